// Command envman views and edits system and user environment variables stored in the Windows registry.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"regtools/internal/console"
	"regtools/internal/envvars"
	"regtools/internal/logging"
	"regtools/internal/model"
	"regtools/internal/release"
	"regtools/internal/tui"
	"regtools/internal/web"
	"regtools/internal/winreg"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: envman [options]\n\n")
		fmt.Fprintf(os.Stderr, "envman lists and edits the system (HKLM) and user (HKCU) environment variables\n")
		fmt.Fprintf(os.Stderr, "stored in the Windows registry.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  envman                      # Interactive menu\n")
		fmt.Fprintf(os.Stderr, "  envman --list               # Print both tables and exit\n")
		fmt.Fprintf(os.Stderr, "  envman --json               # Print variables as JSON\n")
		fmt.Fprintf(os.Stderr, "  envman --broadcast message  # Notify windows instead of running setx\n")
	}

	listFlag := pflag.BoolP("list", "l", false, "Print the variable tables and exit")
	jsonFlag := pflag.BoolP("json", "j", false, "Print the variables as JSON and exit")
	webFlag := pflag.BoolP("web", "w", false, "Serve a read-only view over HTTP")
	addrFlag := pflag.String("addr", web.DefaultAddr, "Listen address for --web")
	broadcastFlag := pflag.StringP("broadcast", "b", envvars.ModeSetx, "How to announce changes: setx, message or none")
	strictFlag := pflag.Bool("strict-broadcast", false, "Report a failed broadcast as a failed write")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Show debug logging")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("envman version %s\n", model.Version)
		return
	}

	if *updateFlag {
		release.Check(os.Stdout, model.Version)
		return
	}

	console.EnableVT()
	if runtime.GOOS != "windows" {
		fmt.Println(tui.DefaultStyles().Error.Render("This program currently only fully supports Windows systems."))
		return
	}

	logger := logging.New(os.Stderr, "envman", *verboseFlag)
	reg := winreg.Native{}

	switch {
	case *webFlag:
		srv := &web.Server{Registry: reg, Log: logger}
		if err := srv.ListenAndServe(*addrFlag); err != nil {
			logger.Fatal("web server stopped", "err", err)
		}
	case *listFlag:
		runListMode(reg)
	case *jsonFlag:
		runJsonMode(reg, logger)
	default:
		b, err := envvars.NewBroadcaster(*broadcastFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		writer := &envvars.Writer{Registry: reg, Broadcaster: b, Log: logger, Strict: *strictFlag}
		runTuiMode(reg, writer)
	}
}

func runListMode(reg winreg.Registry) {
	snap := envvars.Scan(reg)
	st := tui.DefaultStyles()
	if !console.IsTerminal(os.Stdout) {
		st = tui.PlainStyles()
	}
	if err := tui.Print(os.Stdout, snap, console.Width(os.Stdout), st); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
		os.Exit(1)
	}
}

func runJsonMode(reg winreg.Registry, logger *log.Logger) {
	snap := envvars.Scan(reg)
	for _, scope := range model.Scopes {
		if err := snap.Err(scope); err != nil {
			logger.Error("Registry access error", "scope", scope, "err", err)
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding variables: %v\n", err)
		os.Exit(1)
	}
}

func runTuiMode(reg winreg.Registry, w *envvars.Writer) {
	m := tui.InitialModel(reg, w)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
