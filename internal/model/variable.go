package model

import "fmt"

// Scope tells whether an environment variable applies machine-wide or to the current user.
type Scope int

const (
	System Scope = iota
	User
)

// Scopes lists every scope in display order.
var Scopes = []Scope{System, User}

func (s Scope) String() string {
	switch s {
	case System:
		return "system"
	case User:
		return "user"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Title is the heading used above the scope's table.
func (s Scope) Title() string {
	if s == System {
		return "SYSTEM VARIABLES"
	}
	return "USER VARIABLES"
}

// MarshalText makes scopes read as "system"/"user" in JSON output.
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseScopeChoice maps the menu answers "1" and "2" to a scope.
func ParseScopeChoice(choice string) (Scope, bool) {
	switch choice {
	case "1":
		return System, true
	case "2":
		return User, true
	}
	return 0, false
}

// Variable is a single environment variable as stored in the registry.
type Variable struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Scope Scope  `json:"scope"`
}
