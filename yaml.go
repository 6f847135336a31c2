package slist

import "gopkg.in/yaml.v3"

// A list is encoded as a plain sequence, head first
func (l *List[T]) MarshalYAML() (interface{}, error) {
	return l.Values(), nil
}

// Replaces the content of the list with the decoded sequence. Like Assign,
// the list is unchanged if decoding or copying fails.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var values []T
	if err := value.Decode(&values); err != nil {
		return err
	}
	head, err := l.build("unmarshal", len(values), sliceSource(values))
	if err != nil {
		return err
	}
	l.replace(head, len(values))
	return nil
}
