// Package treefile loads declarative task-hierarchy descriptions and
// builds [tasktree.Node] trees from them. A treefile is a YAML (or any
// viper-supported) document describing one root node:
//
//	kind: reactor
//	annotation: main loop
//	children:
//	  - kind: worker
//	    annotation: serving requests
//	  - kind: monitor
//	    transient: true
//
// Treefiles are a diagnostic convenience: they make it cheap to reproduce a
// hierarchy shape in demos and tests without writing construction code.
package treefile

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/baxromumarov/tasktree"
)

// NodeSpec describes a single node and its subtree.
type NodeSpec struct {
	Kind       string     `mapstructure:"kind" yaml:"kind"`
	Annotation string     `mapstructure:"annotation" yaml:"annotation"`
	Transient  bool       `mapstructure:"transient" yaml:"transient"`
	Children   []NodeSpec `mapstructure:"children" yaml:"children"`
}

// Load reads the treefile at path and builds the described tree, returning
// its root.
func Load(path string) (*tasktree.Node, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read treefile: %w", err)
	}

	var spec NodeSpec
	if err := v.Unmarshal(&spec); err != nil {
		return nil, fmt.Errorf("parse treefile: %w", err)
	}

	return Build(spec), nil
}

// Build constructs the tree described by spec and returns its root.
// Children are attached in declaration order. An empty kind falls back to
// the tasktree default.
func Build(spec NodeSpec) *tasktree.Node {
	return build(spec, nil)
}

func build(spec NodeSpec, parent *tasktree.Node) *tasktree.Node {
	opts := make([]tasktree.Option, 0, 4)
	if parent != nil {
		opts = append(opts, tasktree.WithParent(parent))
	}
	if spec.Kind != "" {
		opts = append(opts, tasktree.WithKind(spec.Kind))
	}
	if spec.Annotation != "" {
		opts = append(opts, tasktree.WithAnnotation(spec.Annotation))
	}
	if spec.Transient {
		opts = append(opts, tasktree.WithTransient())
	}

	n := tasktree.New(opts...)
	for _, child := range spec.Children {
		build(child, n)
	}
	return n
}
