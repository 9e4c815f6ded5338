package input

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// BindingSpec is the file form of a Binding.
type BindingSpec struct {
	Keys    []string `yaml:"keys,flow,omitempty"`
	GamePad []string `yaml:"gamepad,flow,omitempty"`
}

type configFile struct {
	Bindings map[string]BindingSpec `yaml:"bindings"`
	Gestures map[string]GestureSpec `yaml:"gestures,omitempty"`
}

// Config is a parsed binding file. Gestures is nil when the file has no
// gestures section.
type Config struct {
	Bindings *BindingTable
	Gestures *GestureTable
}

// LoadConfig reads and parses the binding file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: load %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("input: load %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses a binding file. The file describes the whole table:
// actions it leaves out are bound to nothing.
func ParseConfig(data []byte) (*Config, error) {
	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal bindings: %w", err)
	}
	if file.Bindings == nil {
		return nil, fmt.Errorf("missing bindings section")
	}

	table := NewBindingTable()
	for id, spec := range file.Bindings {
		a, err := ParseAction(id)
		if err != nil {
			return nil, err
		}
		b, err := spec.binding()
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", id, err)
		}
		if err := table.Set(a, b); err != nil {
			return nil, err
		}
	}

	cfg := &Config{Bindings: table}
	if file.Gestures == nil {
		return cfg, nil
	}

	specs := make(map[Action]GestureSpec, len(file.Gestures))
	for id, spec := range file.Gestures {
		a, err := ParseAction(id)
		if err != nil {
			return nil, err
		}
		specs[a] = spec
	}
	gestures, err := GestureTableFromSpecs(specs)
	if err != nil {
		return nil, err
	}
	cfg.Gestures = gestures
	return cfg, nil
}

func (s BindingSpec) binding() (Binding, error) {
	var b Binding
	for _, name := range s.Keys {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return Binding{}, fmt.Errorf("key %q: %w", name, err)
		}
		b.Keys = append(b.Keys, k)
	}
	for _, name := range s.GamePad {
		c, err := ParseGamePadButton(name)
		if err != nil {
			return Binding{}, err
		}
		b.GamePad = append(b.GamePad, c)
	}
	return b, nil
}

func specOf(b Binding) BindingSpec {
	var s BindingSpec
	for _, k := range b.Keys {
		s.Keys = append(s.Keys, k.String())
	}
	for _, c := range b.GamePad {
		s.GamePad = append(s.GamePad, c.String())
	}
	return s
}

// MarshalConfig encodes a binding table and gesture specs as a binding file,
// with actions in declaration order.
func MarshalConfig(t *BindingTable, gestures map[Action]GestureSpec) ([]byte, error) {
	bindings := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range Actions() {
		value := &yaml.Node{}
		if err := value.Encode(specOf(t.bindings[a])); err != nil {
			return nil, fmt.Errorf("input: encode binding %s: %w", a.ID(), err)
		}
		bindings.Content = append(bindings.Content, scalar(a.ID()), value)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, scalar("bindings"), bindings)

	if len(gestures) > 0 {
		g := &yaml.Node{Kind: yaml.MappingNode}
		for _, a := range Actions() {
			spec, ok := gestures[a]
			if !ok {
				continue
			}
			value := &yaml.Node{}
			if err := value.Encode(spec); err != nil {
				return nil, fmt.Errorf("input: encode gesture %s: %w", a.ID(), err)
			}
			g.Content = append(g.Content, scalar(a.ID()), value)
		}
		root.Content = append(root.Content, scalar("gestures"), g)
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("input: marshal bindings: %w", err)
	}
	return out, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// Apply stages cfg on m as a full table reset for the next Update.
func (c *Config) Apply(m *Manager) error {
	return m.Reset(c.Bindings, c.Gestures)
}
