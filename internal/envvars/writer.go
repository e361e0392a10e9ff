package envvars

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"regtools/internal/model"
	"regtools/internal/winreg"
)

var (
	// ErrBroadcast marks a write whose registry value was stored but whose
	// change notification failed. The value is not rolled back.
	ErrBroadcast = errors.New("change broadcast failed")
	ErrEmptyName = errors.New("variable name is required")
)

// Writer stores variables and notifies running processes of the change.
type Writer struct {
	Registry    winreg.Registry
	Broadcaster Broadcaster
	Log         *log.Logger

	// Strict turns a failed broadcast into an error. By default it is only logged.
	Strict bool
}

// Write sets name to value as an expandable string in the scope's key, then broadcasts.
func (w *Writer) Write(name, value string, scope model.Scope) error {
	root, path := Location(scope)
	if err := w.Registry.SetExpandString(root, path, name, value); err != nil {
		return err
	}
	if w.Broadcaster == nil {
		return nil
	}
	if err := w.Broadcaster.Broadcast(name, value, scope); err != nil {
		if w.Strict {
			return fmt.Errorf("%w: %w", ErrBroadcast, err)
		}
		if w.Log != nil {
			w.Log.Warn("registry updated but broadcast failed", "name", name, "scope", scope, "err", err)
		}
	}
	return nil
}

// Update changes an existing variable picked by its index in snap. The
// registry is not touched unless the index exists in scope.
func (w *Writer) Update(snap Snapshot, index int, scope model.Scope, value string) (model.Variable, error) {
	v, err := snap.Target(index, scope)
	if err != nil {
		return model.Variable{}, err
	}
	if err := w.Write(v.Name, value, scope); err != nil {
		return v, err
	}
	v.Value = value
	return v, nil
}

// Add creates a variable, overwriting any existing one with the same name.
func (w *Writer) Add(name, value string, scope model.Scope) error {
	if name == "" {
		return ErrEmptyName
	}
	return w.Write(name, value, scope)
}
