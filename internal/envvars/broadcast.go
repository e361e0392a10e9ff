package envvars

import (
	"fmt"
	"os/exec"
	"strings"

	"regtools/internal/model"
)

// Broadcaster tells running processes that an environment variable changed.
type Broadcaster interface {
	Broadcast(name, value string, scope model.Scope) error
}

// Broadcast modes accepted by NewBroadcaster.
const (
	ModeSetx    = "setx"
	ModeMessage = "message"
	ModeNone    = "none"
)

// NewBroadcaster returns the broadcaster for a mode name.
func NewBroadcaster(mode string) (Broadcaster, error) {
	switch strings.ToLower(mode) {
	case ModeSetx, "":
		return Setx{}, nil
	case ModeMessage:
		return SettingChange{}, nil
	case ModeNone:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown broadcast mode %q (want %s, %s or %s)", mode, ModeSetx, ModeMessage, ModeNone)
}

var execCommand = exec.Command

// Setx persists the variable through the setx command and waits for it.
// setx stores REG_SZ and caps values at 1024 characters.
type Setx struct{}

// SetxArgs builds the setx argument list; system scope needs /M.
func SetxArgs(name, value string, scope model.Scope) []string {
	args := []string{name, value}
	if scope == model.System {
		args = append(args, "/M")
	}
	return args
}

func (Setx) Broadcast(name, value string, scope model.Scope) error {
	out, err := execCommand("setx", SetxArgs(name, value, scope)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("setx %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
