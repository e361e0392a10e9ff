//go:build windows

package envvars

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"regtools/internal/model"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

const (
	hwndBroadcast   = 0xFFFF
	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
	broadcastWaitMs = 5000
)

// SettingChange posts WM_SETTINGCHANGE("Environment") to every top-level window.
type SettingChange struct{}

func (SettingChange) Broadcast(string, string, model.Scope) error {
	env, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return err
	}
	var result uintptr
	r1, _, callErr := procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(env)),
		smtoAbortIfHung,
		broadcastWaitMs,
		uintptr(unsafe.Pointer(&result)),
	)
	if r1 == 0 {
		return fmt.Errorf("SendMessageTimeout: %w", callErr)
	}
	return nil
}
