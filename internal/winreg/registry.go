// Package winreg is the boundary between the tools and the Windows registry.
//
// Callers go through the Registry interface. On Windows, Native talks to the
// real registry; elsewhere it reports ErrUnsupported. Memory is an in-process
// registry used to simulate scopes and hives.
package winreg

import (
	"errors"
	"fmt"
)

// Root is one of the predefined registry hives.
type Root int

const (
	LocalMachine Root = iota
	CurrentUser
	Users
)

func (r Root) String() string {
	switch r {
	case LocalMachine:
		return "HKLM"
	case CurrentUser:
		return "HKCU"
	case Users:
		return "HKU"
	default:
		return fmt.Sprintf("root(%d)", int(r))
	}
}

// Join builds a subkey path, skipping empty parts.
func Join(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += `\`
		}
		out += p
	}
	return out
}

// Display renders root and path the way regedit shows them.
func Display(root Root, path string) string {
	return Join(root.String(), path)
}

// Value is a named registry value rendered as text.
type Value struct {
	Name string
	Data string
}

// Registry is the set of registry operations the tools need.
// Every call opens the key it touches and closes it before returning.
type Registry interface {
	// Values enumerates the values of a key in registry order.
	Values(root Root, path string) ([]Value, error)
	// SubKeyNames lists the immediate subkeys of a key.
	SubKeyNames(root Root, path string) ([]string, error)
	// StringValue reads one string value.
	StringValue(root Root, path, name string) (string, error)
	// SetExpandString creates or overwrites a REG_EXPAND_SZ value.
	SetExpandString(root Root, path, name, value string) error
}

var (
	ErrNotExist     = errors.New("registry key or value does not exist")
	ErrAccessDenied = errors.New("registry access denied")
	ErrUnsupported  = errors.New("registry is only available on Windows")
)

// Outcome classifies the result of a single registry access.
type Outcome int

const (
	Found Outcome = iota
	NotFound
	AccessDenied
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case AccessDenied:
		return "access denied"
	default:
		return "failed"
	}
}

// Classify maps an error returned by a Registry to an Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return Found
	case errors.Is(err, ErrNotExist):
		return NotFound
	case errors.Is(err, ErrAccessDenied):
		return AccessDenied
	default:
		return Failed
	}
}
