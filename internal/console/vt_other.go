//go:build !windows

package console

// EnableVT is a no-op outside Windows; ANSI works out of the box.
func EnableVT() bool { return true }
