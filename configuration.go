package slist

import "go.uber.org/zap"

type Configuration[T any] struct {
	clone  func(T) (T, error)
	logger *zap.Logger
}

// Creates a configuration object with sensible defaults
// Use this as the start of the fluent configuration:
// e.g.: slist.New(slist.Configure[int]().Logger(logger))
func Configure[T any]() *Configuration[T] {
	return &Configuration[T]{
		logger: zap.NewNop(),
	}
}

// The function used to copy a value into the list. Every value stored by
// PushFront, Insert, Set, Clone and Assign goes through it. When it returns
// an error, the operation fails and the list is left as it was.
// [nil, plain assignment]
func (c *Configuration[T]) Clone(fn func(T) (T, error)) *Configuration[T] {
	c.clone = fn
	return c
}

// Debug logging of failed operations
// [zap.NewNop()]
func (c *Configuration[T]) Logger(logger *zap.Logger) *Configuration[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	return c
}

func (c *Configuration[T]) copy(value T) (T, error) {
	if c.clone == nil {
		return value, nil
	}
	return c.clone(value)
}
