package envvars

import (
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"regtools/internal/model"
)

func TestSetxArgs(t *testing.T) {
	if got := SetxArgs("PATH", `C:\a b`, model.System); !reflect.DeepEqual(got, []string{"PATH", `C:\a b`, "/M"}) {
		t.Errorf("system args = %q", got)
	}
	if got := SetxArgs("TEMP", `C:\tmp`, model.User); !reflect.DeepEqual(got, []string{"TEMP", `C:\tmp`}) {
		t.Errorf("user args = %q", got)
	}
}

func TestNewBroadcaster(t *testing.T) {
	tests := []struct {
		mode string
		want Broadcaster
	}{
		{"", Setx{}},
		{"setx", Setx{}},
		{"MESSAGE", SettingChange{}},
		{"none", nil},
	}
	for _, tt := range tests {
		got, err := NewBroadcaster(tt.mode)
		if err != nil || got != tt.want {
			t.Errorf("NewBroadcaster(%q) = %#v, %v", tt.mode, got, err)
		}
	}
	if _, err := NewBroadcaster("smoke-signal"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

// fakeExec re-runs the test binary as the helper process below.
func fakeExec(exitCode int) func(string, ...string) *exec.Cmd {
	return func(name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", fmt.Sprintf("HELPER_EXIT=%d", exitCode))
		return cmd
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	fmt.Println(strings.Join(args[1:], " "))
	if os.Getenv("HELPER_EXIT") != "0" {
		os.Exit(1)
	}
	os.Exit(0)
}

func TestSetxBroadcast(t *testing.T) {
	old := execCommand
	t.Cleanup(func() { execCommand = old })

	execCommand = fakeExec(0)
	if err := (Setx{}).Broadcast("TEMP", `C:\tmp`, model.User); err != nil {
		t.Errorf("success case: %v", err)
	}

	execCommand = fakeExec(1)
	err := (Setx{}).Broadcast("PATH", `C:\a`, model.System)
	if err == nil {
		t.Fatal("expected error from failing setx")
	}
	if !strings.Contains(err.Error(), `setx PATH C:\a /M`) {
		t.Errorf("error should carry command output, got %v", err)
	}
}
