package slist

import (
	"testing"

	"github.com/karlseguin/slist/assert"
	"gopkg.in/yaml.v3"
)

func Test_YAML_Marshal(t *testing.T) {
	data, err := yaml.Marshal(listFromInts(1, 9, 2))
	assert.Nope(t, err)
	assert.Equal(t, string(data), "- 1\n- 9\n- 2\n")

	data, err = yaml.Marshal(New[int](nil))
	assert.Nope(t, err)
	assert.Equal(t, string(data), "[]\n")
}

func Test_YAML_RoundTrip(t *testing.T) {
	type doc struct {
		Name   string        `yaml:"name"`
		Values *List[string] `yaml:"values"`
	}
	in := doc{Name: "arrakis"}
	in.Values, _ = FromSlice(nil, "spice", "sand", "worm")

	data, err := yaml.Marshal(in)
	assert.Nope(t, err)

	var out doc
	assert.Nope(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, out.Name, "arrakis")
	assertList(t, out.Values, "spice", "sand", "worm")
}

func Test_YAML_UnmarshalReplaces(t *testing.T) {
	l := listFromInts(7, 8)
	assert.Nope(t, yaml.Unmarshal([]byte("[3, 2, 1]"), l))
	assertList(t, l, 3, 2, 1)
}

func Test_YAML_UnmarshalFailureLeavesListUnchanged(t *testing.T) {
	l := listFromInts(7, 8)
	assert.NotNil(t, yaml.Unmarshal([]byte("[3, spice]"), l))
	assertList(t, l, 7, 8)

	config, _ := failingConfig(3)
	l, _ = FromSlice(config, 7, 8)
	assert.Error(t, yaml.Unmarshal([]byte("[3, 2, 1]"), l), errCopy)
	assertList(t, l, 7, 8)
}
