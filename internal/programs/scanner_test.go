package programs

import (
	"encoding/json"
	"testing"

	"regtools/internal/logging"
	"regtools/internal/model"
	"regtools/internal/winreg"
)

const (
	nativeUninstall = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`
	wowUninstall    = `SOFTWARE\Wow6432Node\Microsoft\Windows\CurrentVersion\Uninstall`
)

func names(ps []model.InstalledProgram) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestScanUninstallKeysSkipsMissingDisplayName(t *testing.T) {
	reg := winreg.NewMemory()
	reg.Set(winreg.LocalMachine, nativeUninstall+`\{11111111-AAAA}`, "DisplayName", "Git")
	reg.Set(winreg.LocalMachine, nativeUninstall+`\KB5034441`, "ParentKeyName", "OperatingSystem")
	reg.Set(winreg.LocalMachine, nativeUninstall+`\7-Zip`, "DisplayName", "7-Zip 23.01")
	reg.Set(winreg.LocalMachine, wowUninstall+`\{22222222-BBBB}`, "DisplayName", "Notepad++ (32-bit)")

	s := &Scanner{Registry: reg, Log: logging.Discard()}
	res := s.ScanUninstallKeys()

	want := []model.InstalledProgram{
		{ID: "{11111111-AAAA}", Name: "Git", Source: `HKLM\` + nativeUninstall + `\{11111111-AAAA}`},
		{ID: model.UnknownID, Name: "7-Zip 23.01", Source: `HKLM\` + nativeUninstall + `\7-Zip`},
		{ID: "{22222222-BBBB}", Name: "Notepad++ (32-bit)", Source: `HKLM\` + wowUninstall + `\{22222222-BBBB}`},
	}
	if len(res.Programs) != len(want) {
		t.Fatalf("programs = %v", names(res.Programs))
	}
	for i := range want {
		if res.Programs[i] != want[i] {
			t.Errorf("program %d = %+v, want %+v", i, res.Programs[i], want[i])
		}
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Outcome != winreg.NotFound {
		t.Errorf("skipped = %+v", res.Skipped)
	}
}

func TestScanMissingSubtreeIsNotFatal(t *testing.T) {
	reg := winreg.NewMemory()
	// no Wow6432Node on a 32-bit system
	reg.Set(winreg.LocalMachine, nativeUninstall+`\{A}`, "DisplayName", "Only")

	res := (&Scanner{Registry: reg}).ScanUninstallKeys()
	if got := names(res.Programs); len(got) != 1 || got[0] != "Only" {
		t.Errorf("programs = %v", got)
	}
	if res.Count(winreg.NotFound) != 1 {
		t.Errorf("skipped = %+v", res.Skipped)
	}
}

func TestScanUserHives(t *testing.T) {
	reg := winreg.NewMemory()
	reg.Set(winreg.Users, `S-1-5-21-1001\`+UninstallPath+`\Spotify`, "DisplayName", "Spotify")
	reg.CreateKey(winreg.Users, `.DEFAULT\Control Panel`)
	reg.Set(winreg.Users, `S-1-5-21-1002\`+UninstallPath+`\Spotify`, "DisplayName", "Spotify")
	reg.Deny(winreg.Users, `S-1-5-21-1003\`+UninstallPath)

	res := (&Scanner{Registry: reg, Log: logging.Discard()}).ScanUserHives()

	// the same program in two hives is listed twice
	if got := names(res.Programs); len(got) != 2 || got[0] != "Spotify" || got[1] != "Spotify" {
		t.Errorf("programs = %v", got)
	}
	if res.Programs[1].Source != `HKU\S-1-5-21-1002\`+UninstallPath+`\Spotify` {
		t.Errorf("source = %q", res.Programs[1].Source)
	}
	if res.Count(winreg.NotFound) != 1 {
		t.Errorf("want .DEFAULT skipped as not found: %+v", res.Skipped)
	}
	if res.Count(winreg.AccessDenied) != 1 {
		t.Errorf("want denied hive recorded: %+v", res.Skipped)
	}
}

func TestScanUsersRootUnavailable(t *testing.T) {
	res := (&Scanner{Registry: winreg.Native{}}).Scan()
	if len(res.Programs) != 0 {
		t.Skip("running against a live registry")
	}
	if len(res.Skipped) != len(MachineUninstallPaths)+1 {
		t.Errorf("skipped = %+v", res.Skipped)
	}
}

func TestScanOrderMachineThenUsers(t *testing.T) {
	reg := winreg.NewMemory()
	reg.Set(winreg.Users, `S-1-5-18\`+UninstallPath+`\u`, "DisplayName", "user app")
	reg.Set(winreg.LocalMachine, wowUninstall+`\w`, "DisplayName", "wow app")
	reg.Set(winreg.LocalMachine, nativeUninstall+`\n`, "DisplayName", "native app")

	got := names((&Scanner{Registry: reg}).Scan().Programs)
	want := []string{"native app", "wow app", "user app"}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestScanEmptyRegistryEncodesAsArray(t *testing.T) {
	res := (&Scanner{Registry: winreg.NewMemory()}).Scan()
	b, err := json.Marshal(res.Programs)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[]" {
		t.Errorf("json = %s", b)
	}
}
