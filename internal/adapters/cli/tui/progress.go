package tui

import (
	"fmt"
	"strings"
	"sync"
)

// renderProgressBar creates a text progress bar like [=====>    ]
func renderProgressBar(current, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}

	var bar strings.Builder
	bar.WriteString("[")

	switch {
	case current >= total:
		bar.WriteString(strings.Repeat("=", width))
	case current == 0:
		bar.WriteString(strings.Repeat(" ", width))
	default:
		ratio := float64(current) / float64(total)
		equals := int(ratio * float64(width))
		if equals > width-1 {
			equals = width - 1
		}
		spaces := width - equals - 1

		bar.WriteString(strings.Repeat("=", equals))
		bar.WriteString(">")
		bar.WriteString(strings.Repeat(" ", spaces))
	}

	bar.WriteString("]")
	return bar.String()
}

// StepResult is one processed video's outcome for display
type StepResult struct {
	Title     string
	Success   bool
	ErrMsg    string
	FileCount int
}

// ProcessProgress manages the sequential processing display
type ProcessProgress struct {
	total     int
	completed int
	results   []StepResult
	failures  []StepResult
	quiet     bool
	mu        sync.Mutex
	rendered  bool
}

// NewProcessProgress creates a new progress display
func NewProcessProgress(total int, quiet bool) *ProcessProgress {
	if total < 0 {
		total = 0
	}
	return &ProcessProgress{
		total:    total,
		results:  make([]StepResult, 0),
		failures: make([]StepResult, 0),
		quiet:    quiet,
	}
}

// AddResult records an outcome and redraws the display
func (p *ProcessProgress) AddResult(title string, success bool, errMsg string, fileCount int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := StepResult{
		Title:     title,
		Success:   success,
		ErrMsg:    errMsg,
		FileCount: fileCount,
	}

	p.results = append(p.results, result)
	p.completed++

	if !success {
		p.failures = append(p.failures, result)
	}

	p.render()
}

func (p *ProcessProgress) render() {
	if p.quiet {
		return
	}

	// Clear the previous progress line and result lines
	if p.rendered {
		linesToClear := 1 + len(p.results) - 1
		fmt.Printf("\033[%dA", linesToClear)
		fmt.Print("\033[J")
	}

	percent := 0
	if p.total > 0 {
		percent = (p.completed * 100) / p.total
	}
	bar := renderProgressBar(p.completed, p.total, 20)
	fmt.Printf("Processing %d/%d videos %s %d%%\n", p.completed, p.total, bar, percent)

	for _, result := range p.results {
		if result.Success {
			fmt.Printf("✓ %s (%d files)\n", Truncate(result.Title, 50), result.FileCount)
		} else {
			fmt.Printf("✗ %s: %s\n", Truncate(result.Title, 50), result.ErrMsg)
		}
	}

	p.rendered = true
}

// Complete prints the final summary
func (p *ProcessProgress) Complete() {
	if p.quiet {
		return
	}

	p.mu.Lock()
	completed := p.completed
	total := p.total
	failures := make([]StepResult, len(p.failures))
	copy(failures, p.failures)
	p.mu.Unlock()

	succeeded := completed - len(failures)

	fmt.Println()
	fmt.Printf("Done: %d/%d succeeded\n", succeeded, total)

	if len(failures) > 0 {
		fmt.Println("\nFailures:")
		for _, f := range failures {
			fmt.Printf("  ✗ %s: %s\n", Truncate(f.Title, 50), f.ErrMsg)
		}
	}
}

// SuccessCount returns the number of successful results
func (p *ProcessProgress) SuccessCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed - len(p.failures)
}

// FailureCount returns the number of failed results
func (p *ProcessProgress) FailureCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.failures)
}
