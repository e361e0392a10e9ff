//go:build windows

package console

import "golang.org/x/sys/windows"

const enableVirtualTerminalProcessing = 0x0004

// EnableVT turns on ANSI escape handling for stdout and stderr so styled output
// renders in classic consoles. It reports whether at least one stream accepted it.
func EnableVT() bool {
	ok := false
	for _, h := range []uint32{windows.STD_OUTPUT_HANDLE, windows.STD_ERROR_HANDLE} {
		if enableVT(h) == nil {
			ok = true
		}
	}
	return ok
}

func enableVT(stdHandle uint32) error {
	h, err := windows.GetStdHandle(stdHandle)
	if err != nil || h == windows.InvalidHandle {
		return err
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(h, mode|enableVirtualTerminalProcessing)
}
