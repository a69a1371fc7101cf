package cli

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Board Styles
// =============================================================================

var (
	// styleTitle for the board header.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for the key hints and muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleNode for node boxes on the board.
	styleNode = lipgloss.NewStyle().Foreground(colorWhite)

	// styleSelected for the currently selected node.
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDragging for the node being dragged.
	styleDragging = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	// styleStatus for the status line values.
	styleStatus = lipgloss.NewStyle().Foreground(colorGray)

	// styleOverflow marks the overflow flag when set.
	styleOverflow = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	// styleSnapOn marks active grid snapping.
	styleSnapOn = lipgloss.NewStyle().Foreground(colorGreen)
)
