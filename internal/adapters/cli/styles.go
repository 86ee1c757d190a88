package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/rodaine/table"
)

var (
	boldStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("!")
)

// newTable creates a table writing to the adapter's output with the first
// column in bold.
func (a *LabelAdapter) newTable(headers ...interface{}) table.Table {
	tbl := table.New(headers...)
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return boldStyle.Render(fmt.Sprintf(format, vals...))
	})
	tbl.WithPadding(2)
	// lipgloss.Width ignores ANSI codes when measuring columns
	tbl.WithWidthFunc(lipgloss.Width)
	tbl.WithWriter(a.out)
	return tbl
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
