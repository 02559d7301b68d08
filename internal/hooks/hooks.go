// Package hooks bridges engine progress notifications to the CLI's UI
// layer (the TUI and/or the structured log), the same decoupling role the
// teacher's internal/cli/hooks.CLIHooks plays between converter.Hooks and
// its TUI/progress-bar implementations.
package hooks

import (
	"log/slog"
	"sync"
)

// TUIProgram is the subset of a bubbletea program this package needs,
// kept as a narrow interface so tests can substitute a recorder instead
// of standing up a real terminal program.
type TUIProgram interface {
	Send(msg interface{})
}

// NoOpTUIProgram discards every message. Used when no TUI is attached.
type NoOpTUIProgram struct{}

func (NoOpTUIProgram) Send(interface{}) {}

// FileStartedMsg is sent to the TUI program once when a run starts, with
// the file total; FileFinishedMsg is sent as each file completes, and
// RunFinishedMsg when the run ends.
type FileStartedMsg struct{ Total int }
type FileFinishedMsg struct{ Current, Total int }
type RunFinishedMsg struct{}

// Sink implements progress.Sink, forwarding ticks to both a slog.Logger
// (for --verbose/non-interactive runs) and an attached TUI program (for
// the interactive case). A nil TUIProgram is replaced with NoOpTUIProgram,
// mirroring the teacher's "never require the collaborator to be visible"
// posture.
type Sink struct {
	logger *slog.Logger
	tui    TUIProgram
	mu     sync.Mutex
}

// New builds a Sink. Pass nil for tui to run headless.
func New(logger *slog.Logger, tui TUIProgram) *Sink {
	if tui == nil {
		tui = NoOpTUIProgram{}
	}
	return &Sink{logger: logger, tui: tui}
}

// Start implements progress.Sink.
func (s *Sink) Start(total int) {
	s.logger.Info("processing started", slog.Int("total_files", total))
	s.tui.Send(FileStartedMsg{Total: total})
}

// Update implements progress.Sink.
func (s *Sink) Update(current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tui.Send(FileFinishedMsg{Current: current, Total: total})
}

// Stop implements progress.Sink.
func (s *Sink) Stop() {
	s.logger.Info("processing finished")
	s.tui.Send(RunFinishedMsg{})
}
