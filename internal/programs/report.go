package programs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"regtools/internal/model"
)

// DefaultReportPath is where lsprograms writes its report.
const DefaultReportPath = "installed_programs_sorted.txt"

// separatorMargin is added to the identifier width for the dashed line.
const separatorMargin = 25

// ReportWriter writes the two-column program report.
type ReportWriter struct {
	// Notice receives the "No programs found." line.
	Notice io.Writer
}

// Write stores programs at path in the order given. Nothing is written for an empty list.
func (r ReportWriter) Write(programs []model.InstalledProgram, path string) error {
	if len(programs) == 0 {
		if r.Notice != nil {
			fmt.Fprintln(r.Notice, "No programs found.")
		}
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := Render(f, programs); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}

// Render formats the report body to w.
func Render(w io.Writer, programs []model.InstalledProgram) error {
	width := 0
	for _, p := range programs {
		if n := utf8.RuneCountInString(p.ID); n > width {
			width = n
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s | %s\n", pad("GUID", width), "Program Name")
	fmt.Fprintln(bw, strings.Repeat("-", width+separatorMargin))
	for _, p := range programs {
		fmt.Fprintf(bw, "%s | %s\n", pad(p.ID, width), p.Name)
	}
	return bw.Flush()
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
