// Package programs lists installed software from the registry's Uninstall subtrees.
package programs

import (
	"github.com/charmbracelet/log"

	"regtools/internal/model"
	"regtools/internal/winreg"
)

// UninstallPath is the per-user (and native machine) Uninstall subtree.
const UninstallPath = `Software\Microsoft\Windows\CurrentVersion\Uninstall`

// MachineUninstallPaths covers the 64-bit and 32-bit machine-wide views.
var MachineUninstallPaths = []string{
	`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
	`SOFTWARE\Wow6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
}

// DisplayNameValue is the value read from every uninstall subkey.
const DisplayNameValue = "DisplayName"

// Skip records a branch of the scan that produced nothing.
type Skip struct {
	Key     string
	Outcome winreg.Outcome
	Err     error
}

// Result is what a scan found and what it had to leave out.
type Result struct {
	Programs []model.InstalledProgram
	Skipped  []Skip
}

func (r *Result) merge(o Result) {
	r.Programs = append(r.Programs, o.Programs...)
	r.Skipped = append(r.Skipped, o.Skipped...)
}

// Scanner walks the Uninstall subtrees. A failing key only skips its own branch.
type Scanner struct {
	Registry winreg.Registry
	Log      *log.Logger
}

// Scan collects machine-wide programs first, then those of every user hive.
// Programs is never nil.
func (s *Scanner) Scan() Result {
	res := s.ScanUninstallKeys()
	res.merge(s.ScanUserHives())
	if res.Programs == nil {
		res.Programs = []model.InstalledProgram{}
	}
	return res
}

// ScanUninstallKeys reads the machine-wide Uninstall subtrees.
func (s *Scanner) ScanUninstallKeys() Result {
	var res Result
	for _, path := range MachineUninstallPaths {
		res.merge(s.scanSubtree(winreg.LocalMachine, path))
	}
	return res
}

// ScanUserHives reads the Uninstall subtree of every hive loaded under HKU.
func (s *Scanner) ScanUserHives() Result {
	var res Result
	sids, err := s.Registry.SubKeyNames(winreg.Users, "")
	if err != nil {
		res.skip(s.Log, winreg.Display(winreg.Users, ""), err)
		return res
	}
	for _, sid := range sids {
		res.merge(s.scanSubtree(winreg.Users, winreg.Join(sid, UninstallPath)))
	}
	return res
}

func (s *Scanner) scanSubtree(root winreg.Root, path string) Result {
	var res Result
	subkeys, err := s.Registry.SubKeyNames(root, path)
	if err != nil {
		res.skip(s.Log, winreg.Display(root, path), err)
		return res
	}
	for _, sub := range subkeys {
		key := winreg.Join(path, sub)
		name, err := s.Registry.StringValue(root, key, DisplayNameValue)
		if err != nil {
			res.skip(s.Log, winreg.Display(root, key), err)
			continue
		}
		res.Programs = append(res.Programs, model.InstalledProgram{
			ID:     model.ProgramID(sub),
			Name:   name,
			Source: winreg.Display(root, key),
		})
	}
	return res
}

func (r *Result) skip(l *log.Logger, key string, err error) {
	o := winreg.Classify(err)
	r.Skipped = append(r.Skipped, Skip{Key: key, Outcome: o, Err: err})
	if l != nil {
		l.Debug("skipped", "key", key, "outcome", o)
	}
}

// Count returns how many skipped branches had the given outcome.
func (r Result) Count(o winreg.Outcome) int {
	n := 0
	for _, s := range r.Skipped {
		if s.Outcome == o {
			n++
		}
	}
	return n
}
