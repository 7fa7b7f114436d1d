package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/suitekit/suitekit/types"
)

// TableFormatter renders test results as a console table, one row per test,
// grouped by class. The table style signals the overall run status.
type TableFormatter struct {
	title string
}

// NewTableFormatter creates a new TableFormatter with the given title.
func NewTableFormatter(title string) *TableFormatter {
	return &TableFormatter{title: title}
}

// Format writes the result table to out.
func (f *TableFormatter) Format(out io.Writer, results []*types.TestResult, duration time.Duration) error {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%s (%s)", f.title, formatDuration(duration)))

	t.AppendHeader(table.Row{
		"Class", "Test", "Duration", "Status", "Detail",
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Class", AutoMerge: true},
		{Name: "Test", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Detail", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
	})

	stats := struct {
		total, passed, failed, timedOut, errored int
	}{}

	lastClass := ""
	for _, res := range results {
		if lastClass != "" && res.Class != lastClass {
			t.AppendSeparator()
		}
		lastClass = res.Class

		name := res.Method
		if res.Description != "" {
			name = fmt.Sprintf("%s — %s", res.Method, res.Description)
		}

		t.AppendRow(table.Row{
			res.Class,
			name,
			formatDuration(res.Duration),
			string(res.Status),
			res.Detail(),
		})

		stats.total++
		switch res.Status {
		case types.TestStatusPass:
			stats.passed++
		case types.TestStatusFail:
			stats.failed++
		case types.TestStatusTimeout:
			stats.timedOut++
		case types.TestStatusError:
			stats.errored++
		}
	}

	if stats.failed == 0 && stats.timedOut == 0 && stats.errored == 0 {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}

	t.AppendFooter(table.Row{
		"TOTAL",
		fmt.Sprintf("%d tests", stats.total),
		formatDuration(duration),
		fmt.Sprintf("%d passed", stats.passed),
		fmt.Sprintf("%d failed, %d timed out, %d errored", stats.failed, stats.timedOut, stats.errored),
	})

	t.Render()
	return nil
}

// Helper function to format duration to seconds with 1 decimal place
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
