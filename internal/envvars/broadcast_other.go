//go:build !windows

package envvars

import (
	"regtools/internal/model"
	"regtools/internal/winreg"
)

// SettingChange needs the Windows message loop.
type SettingChange struct{}

func (SettingChange) Broadcast(string, string, model.Scope) error { return winreg.ErrUnsupported }
