package envvars

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"regtools/internal/model"
	"regtools/internal/winreg"
)

func simulated() *winreg.Memory {
	reg := winreg.NewMemory()
	reg.Set(winreg.LocalMachine, SystemEnvPath, "PATH", `C:\a`)
	reg.Set(winreg.CurrentUser, UserEnvPath, "TEMP", `C:\tmp`)
	return reg
}

func TestScanBuildsIndexedTable(t *testing.T) {
	snap := Scan(simulated())

	want := []model.Variable{
		{Index: 0, Name: "PATH", Value: `C:\a`, Scope: model.System},
		{Index: 1, Name: "TEMP", Value: `C:\tmp`, Scope: model.User},
	}
	if len(snap.Table) != len(want) {
		t.Fatalf("table has %d entries, want %d", len(snap.Table), len(want))
	}
	for i, w := range want {
		got, ok := snap.Resolve(i)
		if !ok || got != w {
			t.Errorf("Resolve(%d) = %+v, %v; want %+v", i, got, ok, w)
		}
	}
	if _, ok := snap.Resolve(2); ok {
		t.Error("Resolve(2) should miss")
	}
	if _, ok := snap.Resolve(-1); ok {
		t.Error("Resolve(-1) should miss")
	}
}

func TestScanScopesAreContiguous(t *testing.T) {
	reg := winreg.NewMemory()
	for _, n := range []string{"ComSpec", "OS", "PATH", "windir"} {
		reg.Set(winreg.LocalMachine, SystemEnvPath, n, "x")
	}
	for _, n := range []string{"TEMP", "TMP", "OneDrive"} {
		reg.Set(winreg.CurrentUser, UserEnvPath, n, "y")
	}
	snap := Scan(reg)

	nSys := len(snap.System)
	if nSys != 4 || len(snap.User) != 3 {
		t.Fatalf("got %d system, %d user", nSys, len(snap.User))
	}
	for i := 0; i < nSys; i++ {
		if v, _ := snap.Resolve(i); v.Scope != model.System {
			t.Errorf("index %d: scope %v, want system", i, v.Scope)
		}
	}
	for i := nSys; i < nSys+len(snap.User); i++ {
		if v, _ := snap.Resolve(i); v.Scope != model.User {
			t.Errorf("index %d: scope %v, want user", i, v.Scope)
		}
	}
	// enumeration order is preserved within a scope
	if snap.User[0].Name != "TEMP" || snap.User[2].Name != "OneDrive" || snap.User[2].Index != 6 {
		t.Errorf("user order/index wrong: %+v", snap.User)
	}
}

func TestScanUnreadableScope(t *testing.T) {
	reg := simulated()
	reg.Deny(winreg.LocalMachine, SystemEnvPath)

	snap := Scan(reg)
	if !errors.Is(snap.Err(model.System), winreg.ErrAccessDenied) {
		t.Errorf("system err = %v, want access denied", snap.Err(model.System))
	}
	if snap.Err(model.User) != nil {
		t.Errorf("user err = %v", snap.Err(model.User))
	}
	if len(snap.System) != 0 {
		t.Errorf("system should be empty, got %v", snap.System)
	}
	if v, ok := snap.Resolve(0); !ok || v.Name != "TEMP" {
		t.Errorf("user entries should start at 0, got %+v", v)
	}
}

func TestTarget(t *testing.T) {
	snap := Scan(simulated())

	if v, err := snap.Target(1, model.User); err != nil || v.Name != "TEMP" {
		t.Errorf("Target(1, user) = %+v, %v", v, err)
	}
	if _, err := snap.Target(0, model.User); !errors.Is(err, ErrScopeMismatch) {
		t.Errorf("Target(0, user) err = %v, want scope mismatch", err)
	}
	if _, err := snap.Target(9, model.System); !errors.Is(err, ErrIndexNotFound) {
		t.Errorf("Target(9) err = %v, want index not found", err)
	}
}

func TestScanReplacesPreviousSnapshot(t *testing.T) {
	reg := simulated()
	first := Scan(reg)
	reg.Set(winreg.LocalMachine, SystemEnvPath, "JAVA_HOME", `C:\jdk`)
	second := Scan(reg)

	if len(first.Table) != 2 {
		t.Errorf("first snapshot changed: %v", first.Table)
	}
	if v, _ := second.Resolve(1); v.Name != "JAVA_HOME" {
		t.Errorf("index 1 after rescan = %+v, want JAVA_HOME", v)
	}
	if v, _ := second.Resolve(2); v.Name != "TEMP" || v.Scope != model.User {
		t.Errorf("index 2 after rescan = %+v, want user TEMP", v)
	}
}

func TestEmptyScopesEncodeAsArrays(t *testing.T) {
	b, err := json.Marshal(Scan(winreg.NewMemory()))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); !strings.Contains(got, `"system":[]`) || !strings.Contains(got, `"user":[]`) {
		t.Errorf("json = %s", got)
	}
}
