// Package vars keeps variable bindings that formulas are evaluated against.
package vars

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/elves/formula/pkg/formula"
	"gopkg.in/yaml.v3"
)

// Bindings maps normalized variable names to values. The zero value is an
// empty set of bindings ready to use.
type Bindings struct {
	values map[string]float64
}

// UnsetError is returned by Lookup for variables without a value.
type UnsetError struct{ Name string }

func (err *UnsetError) Error() string { return err.Name + " is unset" }

// InvalidNameError is returned when binding a name that is not a variable
// token.
type InvalidNameError struct{ Name string }

func (err *InvalidNameError) Error() string {
	return fmt.Sprintf("%q is not a valid variable name", err.Name)
}

// Set binds name to value.
func (b *Bindings) Set(name string, value float64) error {
	if !formula.IsVariable(name) {
		return &InvalidNameError{name}
	}
	if b.values == nil {
		b.values = make(map[string]float64)
	}
	b.values[formula.NormalizeVariable(name)] = value
	return nil
}

// Lookup returns the value bound to name. It has the signature of
// arith.Lookup.
func (b Bindings) Lookup(name string) (float64, error) {
	value, ok := b.values[formula.NormalizeVariable(name)]
	if !ok {
		return 0, &UnsetError{name}
	}
	return value, nil
}

// Len returns the number of bound variables.
func (b Bindings) Len() int { return len(b.values) }

// Names returns the bound variable names, sorted.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b.values))
	for name := range b.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns bindings containing those of b and all others. Later
// bindings win.
func (b Bindings) Merge(others ...Bindings) Bindings {
	merged := Bindings{make(map[string]float64, len(b.values))}
	for _, src := range append([]Bindings{b}, others...) {
		for name, value := range src.values {
			merged.values[name] = value
		}
	}
	return merged
}

// FromEnv builds bindings from environment entries of the form
// prefix+NAME=VALUE. Entries without the prefix are ignored.
func FromEnv(entries []string, prefix string) (Bindings, error) {
	var b Bindings
	for _, entry := range entries {
		// Note: Treat "foo" like "foo=" if such entries ever occur.
		key, value, _ := strings.Cut(entry, "=")
		name, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		if err := b.setString(name, value); err != nil {
			return Bindings{}, fmt.Errorf("environment variable %s: %w", key, err)
		}
	}
	return b, nil
}

// ParseAssignment parses "NAME=VALUE" and binds it in a new Bindings.
func ParseAssignment(s string) (Bindings, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return Bindings{}, fmt.Errorf("%q is not of the form NAME=VALUE", s)
	}
	var b Bindings
	if err := b.setString(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
		return Bindings{}, err
	}
	return b, nil
}

// LoadYAML reads bindings from a YAML mapping of names to numbers. An empty
// document gives empty bindings.
func LoadYAML(r io.Reader) (Bindings, error) {
	var m map[string]float64
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return Bindings{}, fmt.Errorf("decode bindings: %w", err)
	}
	var b Bindings
	for name, value := range m {
		if err := b.Set(name, value); err != nil {
			return Bindings{}, err
		}
	}
	return b, nil
}

func (b *Bindings) setString(name, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("value of %s: %w", name, err)
	}
	return b.Set(name, v)
}
