package progress

import (
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Console is a Sink backed by github.com/schollz/progressbar/v3, the same
// bar library the teacher's CLI hooks wrap (internal/cli/hooks/hooks.go).
// It renders a single terminal progress bar and is safe for concurrent
// Update calls from a parallel/benchmark run.
type Console struct {
	description string
	mu          sync.Mutex
	bar         *progressbar.ProgressBar
}

// NewConsole creates a Console sink. description is shown alongside the
// bar (e.g. "processing files").
func NewConsole(description string) *Console {
	return &Console{description: description}
}

// Start implements Sink.
func (c *Console) Start(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(c.description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
}

// Update implements Sink. It sets the bar to the absolute completed count
// rather than incrementing, since callers report running totals.
func (c *Console) Update(current, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bar == nil {
		return
	}
	_ = c.bar.Set(current)
}

// Stop implements Sink.
func (c *Console) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bar == nil {
		return
	}
	_ = c.bar.Finish()
}
