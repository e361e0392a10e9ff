package model

import "strings"

// UnknownID marks programs whose uninstall subkey is not a GUID.
const UnknownID = "N/A"

// InstalledProgram is one entry found under an Uninstall subtree.
type InstalledProgram struct {
	ID     string `json:"id"`   // subkey name if GUID-like, UnknownID otherwise
	Name   string `json:"name"` // DisplayName value
	Source string `json:"source,omitempty"`
}

// ProgramID derives the report identifier from an uninstall subkey name.
func ProgramID(subkey string) string {
	if strings.HasPrefix(subkey, "{") {
		return subkey
	}
	return UnknownID
}
