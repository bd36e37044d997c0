// Package env implements the identifier-to-value binding store used by
// the virtual machine. An Env is one level of the scope chain: an
// ordered list of bindings plus an optional parent level.
package env

import "jminus/internal/errors"

type binding struct {
	name  string
	value int64
}

// Env holds the bindings of one scope level. Lookup and assignment scan
// the local bindings newest-first, then fall through to the parent
// chain. An Env never mutates its parent's list directly.
type Env struct {
	entries []binding
	parent  *Env
}

// New creates a scope level. A nil parent denotes the global level.
func New(parent *Env) *Env {
	return &Env{parent: parent}
}

// Define creates or overwrites a binding in this level only. Redefining
// a name updates the existing entry in place, so a level never holds
// two bindings for the same name.
func (e *Env) Define(name string, value int64) {
	for i := len(e.entries) - 1; i >= 0; i-- {
		if e.entries[i].name == name {
			e.entries[i].value = value
			return
		}
	}
	e.entries = append(e.entries, binding{name: name, value: value})
}

// Lookup returns the value bound to name, searching this level then the
// ancestor chain. A miss across the whole chain is a ReferenceError.
func (e *Env) Lookup(name string) (int64, error) {
	for i := len(e.entries) - 1; i >= 0; i-- {
		if e.entries[i].name == name {
			return e.entries[i].value, nil
		}
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return 0, errors.Newf(errors.ReferenceError, "undefined variable: %s", name)
}

// Assign updates the nearest existing binding for name, searching this
// level then the ancestor chain. It never creates a binding; a miss
// across the whole chain is a ReferenceError.
func (e *Env) Assign(name string, value int64) error {
	for i := len(e.entries) - 1; i >= 0; i-- {
		if e.entries[i].name == name {
			e.entries[i].value = value
			return nil
		}
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return errors.Newf(errors.ReferenceError, "undefined variable: %s", name)
}

// Len reports the number of bindings in this level alone.
func (e *Env) Len() int {
	return len(e.entries)
}
