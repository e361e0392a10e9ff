package model

// Version is reported by --version and compared against the latest release by --update.
var Version = "0.3.0"
