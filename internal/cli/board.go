package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/corkboard/corkboard/pkg/canvas"
	"github.com/corkboard/corkboard/pkg/settings"
)

// boardCommand creates the board command for the interactive terminal board.
func (c *CLI) boardCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive terminal board",
		Long: `Open the interactive terminal board.

Nodes are placed, selected, and dragged with the keyboard. Zoom and grid
snapping can be changed live; the status line shows the overflow state,
scroll compensation, and how many nodes survive visibility culling.

The board uses the static settings backend so the snap key takes effect
immediately; the [grid] table of the config file seeds the initial policy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoard(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", DefaultConfigPath(), "config file path")

	return cmd
}

// runBoard wires the coordinator, viewport, and settings provider from the
// config and hands them to the bubbletea program.
func (c *CLI) runBoard(configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	policy := settings.NewStatic(cfg.GridPolicy())
	coord := canvas.NewCoordinator(cfg.NewViewport(), policy, &canvas.CoordinatorOptions{
		Footprint: cfg.Footprint(),
	})

	c.Logger.Debug("board starting",
		"canvas", fmt.Sprintf("%gx%g", cfg.Canvas.Width, cfg.Canvas.Height),
		"snap", cfg.Grid.SnapToGrid)

	p := tea.NewProgram(NewBoardModel(coord, policy, cfg.Footprint()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}
