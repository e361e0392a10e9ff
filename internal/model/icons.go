package model

// Status markers printed in front of operator messages.
// Single-width characters keep the console columns aligned.
const (
	IconOK    = "✓"
	IconError = "✗"
)
