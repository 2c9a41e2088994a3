// Package config loads piecewise function definitions from YAML.
//
// Example file:
//
//	functions:
//	  - name: relu
//	    split: 1
//	    left:  {kind: constant, value: 0}
//	    right: {kind: linear, slope: 1, offset: -1}
//	  - name: soft-step
//	    b1: 10
//	    left:  {kind: constant, value: 0}
//	    right: {kind: constant, value: 1}
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/piecewise/internal/piecewise"
)

// ErrUnknownFunction is returned by Build for a name the file does not define.
var ErrUnknownFunction = errors.New("unknown function")

// File is a parsed configuration file.
type File struct {
	Functions []Function `yaml:"functions"`
}

// Function describes one piecewise function. Zero widths mean "default":
// b1 = 1 and b2 = b1.
type Function struct {
	Name     string  `yaml:"name"`
	Split    float64 `yaml:"split"`
	B1       float64 `yaml:"b1"`
	B2       float64 `yaml:"b2"`
	Centered bool    `yaml:"centered"`
	Left     Branch  `yaml:"left"`
	Right    Branch  `yaml:"right"`
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("config.loaded", "path", path, "functions", len(f.Functions))
	return f, nil
}

// Parse parses YAML bytes and validates names and branch kinds.
func Parse(b []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	seen := make(map[string]bool, len(f.Functions))
	for i, fn := range f.Functions {
		if fn.Name == "" {
			return nil, fmt.Errorf("function %d: missing name", i)
		}
		if seen[fn.Name] {
			return nil, fmt.Errorf("function %q: duplicate name", fn.Name)
		}
		seen[fn.Name] = true

		if err := fn.Left.validate(); err != nil {
			return nil, fmt.Errorf("function %q: left: %w", fn.Name, err)
		}
		if err := fn.Right.validate(); err != nil {
			return nil, fmt.Errorf("function %q: right: %w", fn.Name, err)
		}
	}
	return &f, nil
}

// Names returns the defined function names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Functions))
	for _, fn := range f.Functions {
		names = append(names, fn.Name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named function.
func (f *File) Build(name string) (*piecewise.Piecewise[float64], error) {
	for _, fn := range f.Functions {
		if fn.Name == name {
			return fn.Build()
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownFunction)
}

// Build constructs the function described by fn.
func (fn Function) Build() (*piecewise.Piecewise[float64], error) {
	opts := []piecewise.Option[float64]{piecewise.WithSplit(fn.Split)}
	if fn.B1 != 0 {
		opts = append(opts, piecewise.WithWidth(fn.B1))
	}
	if fn.B2 != 0 {
		opts = append(opts, piecewise.WithDiffWidth(fn.B2))
	}
	if fn.Centered {
		opts = append(opts, piecewise.WithCenteredCorrection[float64]())
	}

	p, err := piecewise.New(fn.Left.Func(), fn.Right.Func(), opts...)
	if err != nil {
		return nil, fmt.Errorf("function %q: %w", fn.Name, err)
	}
	return p, nil
}
