package display

import "github.com/charmbracelet/lipgloss"

// Palette of the machine: felt table, gold trim, red and black suits
var (
	FeltColor  = lipgloss.Color("#1B5E20")
	GoldColor  = lipgloss.Color("#F2C94C")
	ChipColor  = lipgloss.Color("#E67E22")
	HeartColor = lipgloss.Color("#D7263D")
	SpadeColor = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#ECEFF1"}
	HoldColor  = lipgloss.Color("#2ECC71")
	WinColor   = lipgloss.Color("#7BD88F")
	DimColor   = lipgloss.Color("#7F8C8D")
	TextColor  = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#ECEFF1"}
)

func bold(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

var (
	// MarqueeStyle is the title bar above the hand
	MarqueeStyle = bold(GoldColor).Background(FeltColor).Padding(0, 1)

	BalanceStyle   = bold(GoldColor)
	BetStyle       = bold(ChipColor)
	PromptStyle    = bold(GoldColor)
	RedSuitStyle   = bold(HeartColor)
	BlackSuitStyle = bold(SpadeColor)
	HeldStyle      = bold(HoldColor)
	WinStyle       = bold(WinColor)
	LossStyle      = bold(HeartColor)
	HintStyle      = lipgloss.NewStyle().Foreground(DimColor)

	// InputStyle is the text typed at the bet prompt
	InputStyle = lipgloss.NewStyle().Foreground(TextColor)

	// slotStyle holds one card or its label, five to a row
	slotStyle = lipgloss.NewStyle().Width(6).Align(lipgloss.Center)
)
