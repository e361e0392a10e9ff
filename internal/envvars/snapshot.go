// Package envvars reads and writes environment variables kept in the registry.
package envvars

import (
	"errors"
	"fmt"

	"regtools/internal/model"
	"regtools/internal/winreg"
)

// Registry locations of the two scopes.
const (
	SystemEnvPath = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
	UserEnvPath   = `Environment`
)

var (
	ErrIndexNotFound = errors.New("invalid index")
	ErrScopeMismatch = errors.New("variable belongs to another scope")
)

// Location returns the registry key holding a scope's variables.
func Location(scope model.Scope) (winreg.Root, string) {
	if scope == model.System {
		return winreg.LocalMachine, SystemEnvPath
	}
	return winreg.CurrentUser, UserEnvPath
}

// Fetch enumerates every variable of one scope in registry order.
// Index is left at zero; Scan assigns it.
func Fetch(reg winreg.Registry, scope model.Scope) ([]model.Variable, error) {
	root, path := Location(scope)
	values, err := reg.Values(root, path)
	if err != nil {
		return nil, fmt.Errorf("%s variables: %w", scope, err)
	}
	vars := make([]model.Variable, 0, len(values))
	for _, v := range values {
		vars = append(vars, model.Variable{Name: v.Name, Value: v.Data, Scope: scope})
	}
	return vars, nil
}

// Table maps a dense index to a variable: all system entries first, then all user entries.
type Table []model.Variable

// Resolve looks up an index without touching the registry.
func (t Table) Resolve(index int) (model.Variable, bool) {
	if index < 0 || index >= len(t) {
		return model.Variable{}, false
	}
	return t[index], true
}

// Snapshot is the result of one full registry scan. It is never mutated after Scan returns.
type Snapshot struct {
	System []model.Variable `json:"system"`
	User   []model.Variable `json:"user"`
	Table  Table            `json:"-"`

	errs map[model.Scope]error
}

// Scan reads both scopes and builds a fresh indexed table. A scope whose key
// cannot be read is reported through Err and contributes no variables.
func Scan(reg winreg.Registry) Snapshot {
	s := Snapshot{
		System: []model.Variable{},
		User:   []model.Variable{},
		errs:   make(map[model.Scope]error),
	}
	for _, scope := range model.Scopes {
		vars, err := Fetch(reg, scope)
		if err != nil {
			s.errs[scope] = err
		}
		for _, v := range vars {
			v.Index = len(s.Table)
			s.Table = append(s.Table, v)
			if scope == model.System {
				s.System = append(s.System, v)
			} else {
				s.User = append(s.User, v)
			}
		}
	}
	return s
}

// Variables returns one scope's entries, carrying their table indices.
func (s Snapshot) Variables(scope model.Scope) []model.Variable {
	if scope == model.System {
		return s.System
	}
	return s.User
}

// Err reports why a scope could not be read, if it could not.
func (s Snapshot) Err(scope model.Scope) error {
	return s.errs[scope]
}

// Resolve looks up an index in the snapshot's table.
func (s Snapshot) Resolve(index int) (model.Variable, bool) {
	return s.Table.Resolve(index)
}

// Target validates an operator's edit request: the index must exist and the
// stored scope must match the chosen one. Mismatches are rejected, not corrected.
func (s Snapshot) Target(index int, scope model.Scope) (model.Variable, error) {
	v, ok := s.Resolve(index)
	if !ok {
		return model.Variable{}, fmt.Errorf("%w: %d", ErrIndexNotFound, index)
	}
	if v.Scope != scope {
		return model.Variable{}, fmt.Errorf("%w: %q is a %s variable", ErrScopeMismatch, v.Name, v.Scope)
	}
	return v, nil
}
