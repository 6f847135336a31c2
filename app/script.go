package main

import (
	"fmt"
	"os"

	"github.com/karlseguin/slist"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Step struct {
	Op    string `yaml:"op"`
	Pos   int    `yaml:"pos,omitempty"`
	Value int    `yaml:"value,omitempty"`
}

func (s Step) String() string {
	switch s.Op {
	case "push_front", "find":
		return fmt.Sprintf("%s(%d)", s.Op, s.Value)
	case "insert", "set":
		return fmt.Sprintf("%s(%d, %d)", s.Op, s.Pos, s.Value)
	case "at", "erase":
		return fmt.Sprintf("%s(%d)", s.Op, s.Pos)
	}
	return s.Op + "()"
}

type Script struct {
	Values *slist.List[int] `yaml:"values"`
	Steps  []Step           `yaml:"steps"`
}

type Result struct {
	Step   Step
	Output string
	List   string
	Err    error
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	script := new(Script)
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	return script, nil
}

// Runs every step against a single list. A failing step is recorded and
// replay carries on with the next one.
func Replay(script *Script, logger *zap.Logger) ([]Result, error) {
	list := slist.New(slist.Configure[int]().Logger(logger))
	if script.Values != nil {
		if err := list.Assign(script.Values); err != nil {
			return nil, err
		}
	}

	results := make([]Result, 0, len(script.Steps))
	for _, step := range script.Steps {
		output, err := apply(list, step)
		if err != nil {
			logger.Debug("step failed", zap.Stringer("step", step), zap.Error(err))
		}
		results = append(results, Result{
			Step:   step,
			Output: output,
			List:   list.String(),
			Err:    err,
		})
	}
	return results, nil
}

func apply(list *slist.List[int], step Step) (string, error) {
	switch step.Op {
	case "push_front":
		return "", list.PushFront(step.Value)
	case "pop_front":
		value, err := list.PopFront()
		return valueOutput("popped", value, err)
	case "front":
		value, err := list.Front()
		return valueOutput("front", value, err)
	case "insert":
		return "", list.Insert(step.Pos, step.Value)
	case "at":
		value, err := list.At(step.Pos)
		return valueOutput("value", value, err)
	case "set":
		return "", list.Set(step.Pos, step.Value)
	case "erase":
		value, err := list.Erase(step.Pos)
		return valueOutput("erased", value, err)
	case "find":
		if pos, ok := slist.Find(list, step.Value); ok {
			return fmt.Sprintf("found at %d", pos), nil
		}
		return "not found", nil
	case "sort":
		slist.Sort(list)
		return "", nil
	case "clear":
		list.Clear()
		return "", nil
	}
	return "", fmt.Errorf("unknown op %q", step.Op)
}

func valueOutput(label string, value int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s=%d", label, value), nil
}

func demoScript() *Script {
	return &Script{Steps: []Step{
		{Op: "push_front", Value: 3},
		{Op: "push_front", Value: 2},
		{Op: "push_front", Value: 1},
		{Op: "insert", Pos: 1, Value: 9},
		{Op: "erase", Pos: 0},
		{Op: "find", Value: 2},
		{Op: "find", Value: 100},
		{Op: "sort"},
		{Op: "at", Pos: 3},
		{Op: "pop_front"},
		{Op: "front"},
	}}
}
