package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/suitekit/suitekit/types"
)

// TextSummarySink collects results and writes a plain-text summary file for
// the run, one line per test, under <baseDir>/testrun-<runID>/summary.log.
type TextSummarySink struct {
	baseDir string
	results map[string][]*types.TestResult
}

// NewTextSummarySink creates a new text summary sink rooted at baseDir.
func NewTextSummarySink(baseDir string) *TextSummarySink {
	return &TextSummarySink{
		baseDir: baseDir,
		results: make(map[string][]*types.TestResult),
	}
}

// Consume collects test results for later summary generation
func (s *TextSummarySink) Consume(result *types.TestResult, runID string) error {
	s.results[runID] = append(s.results[runID], result)
	return nil
}

// Complete writes the summary file for the given run.
func (s *TextSummarySink) Complete(runID string) error {
	outputDir := filepath.Join(s.baseDir, "testrun-"+runID)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	var b strings.Builder
	for _, res := range s.results[runID] {
		b.WriteString(FormatLine(res))
		b.WriteByte('\n')
	}

	summaryFile := filepath.Join(outputDir, "summary.log")
	if err := os.WriteFile(summaryFile, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}

	// The run is written out; drop its buffer so interval mode does not
	// accumulate every past run in memory.
	delete(s.results, runID)
	return nil
}

// FormatLine renders one report line for a test result.
func FormatLine(res *types.TestResult) string {
	line := fmt.Sprintf("[%s] %s (%s)", res.Status, res.DisplayName(), res.Duration)
	if detail := res.Detail(); detail != "" {
		line = fmt.Sprintf("%s: %s", line, detail)
	}
	return line
}
