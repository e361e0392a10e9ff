// Command lsprograms writes a sorted report of the programs registered under the Windows Uninstall keys.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"regtools/internal/logging"
	"regtools/internal/model"
	"regtools/internal/programs"
	"regtools/internal/release"
	"regtools/internal/winreg"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lsprograms [options]\n\n")
		fmt.Fprintf(os.Stderr, "lsprograms collects installed programs from the machine-wide (32- and 64-bit)\n")
		fmt.Fprintf(os.Stderr, "and per-user Uninstall registry keys and writes them sorted by name.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lsprograms                 # Write %s\n", programs.DefaultReportPath)
		fmt.Fprintf(os.Stderr, "  lsprograms -o apps.txt     # Write the report elsewhere\n")
		fmt.Fprintf(os.Stderr, "  lsprograms --json          # Print the sorted list as JSON\n")
	}

	outputFlag := pflag.StringP("output", "o", programs.DefaultReportPath, "Report file to write")
	jsonFlag := pflag.BoolP("json", "j", false, "Print the sorted list as JSON instead of writing a report")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Log every registry branch that was skipped")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("lsprograms version %s\n", model.Version)
		return
	}

	if *updateFlag {
		release.Check(os.Stdout, model.Version)
		return
	}

	if runtime.GOOS != "windows" {
		fmt.Println("Error: This script requires Windows OS.")
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, "lsprograms", *verboseFlag)
	scanner := &programs.Scanner{Registry: winreg.Native{}, Log: logger}
	res := scanner.Scan()
	programs.SortByName(res.Programs)
	logger.Debug("scan finished",
		"programs", len(res.Programs),
		"missing", res.Count(winreg.NotFound),
		"denied", res.Count(winreg.AccessDenied),
		"failed", res.Count(winreg.Failed))

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Programs); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding programs: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rw := programs.ReportWriter{Notice: os.Stdout}
	if err := rw.Write(res.Programs, *outputFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", *outputFlag, err)
		os.Exit(1)
	}
	fmt.Printf("A total of %d programs found. Output written to: %s\n", len(res.Programs), *outputFlag)
}
