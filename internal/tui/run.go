package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cartwise/cartwise/internal/service"
)

// Run starts the explorer over a loaded snapshot and blocks until it exits.
func Run(ctx context.Context, snapshot *service.Snapshot) error {
	program := tea.NewProgram(New(snapshot), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("explorer failed: %w", err)
	}
	return nil
}
