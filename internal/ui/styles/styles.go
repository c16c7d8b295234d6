// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Book paper and ink
	InkColor         = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#E8E0CC"}
	InkMutedColor    = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#B5AC98"}
	RuleColor        = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#7A7466"}
	GutterColor      = lipgloss.AdaptiveColor{Light: "#B8AE98", Dark: "#8C8473"}
	ChoiceFocusColor = lipgloss.AdaptiveColor{Light: "#8B1E14", Dark: "#FF7A66"} // focused choice text

	// Cover
	CoverRedColor    = lipgloss.Color("#CC3B2F") // classic red border
	CoverGoldColor   = lipgloss.Color("#E0B970") // inner gold frame
	CoverBadgeColor  = lipgloss.Color("#DC2626")
	CoverTitleColor  = lipgloss.Color("#7E22CE")
	CoverTextColor   = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}
	CoverCreditColor = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// Terminal (loading screen)
	TerminalColor      = lipgloss.Color("#00FF00")
	TerminalDimColor   = lipgloss.Color("#00CC00")
	TerminalTextColor  = lipgloss.Color("#AAFFAA")
	TerminalErrorColor = lipgloss.Color("#FF3300")
	TerminalWarnColor  = lipgloss.Color("#FFCC00")
	TerminalOKColor    = lipgloss.Color("#00FF66")
	TerminalCmdColor   = lipgloss.Color("#00CCFF")

	// Overlays (help, logs)
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#696969"}
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	OverlayTitleColor    = lipgloss.AdaptiveColor{Light: "#8B1E14", Dark: "#E0B970"}
	OverlayBorderColor   = lipgloss.AdaptiveColor{Light: "#CC3B2F", Dark: "#CC3B2F"}
	BorderDefaultColor   = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#C98A00", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D83A3A", Dark: "#FF8787"}
	StatusInfoColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
)

var (
	PageNumberStyle = lipgloss.NewStyle().Foreground(InkColor)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(InkColor)

	QuoteStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(InkColor)

	QuoteAuthorStyle = lipgloss.NewStyle().Foreground(InkMutedColor)

	IllustrationFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(RuleColor).
				Foreground(InkMutedColor).
				Italic(true).
				Align(lipgloss.Center)

	RuleStyle = lipgloss.NewStyle().Foreground(RuleColor)

	ChoiceStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(InkColor)

	ChoiceFocusedStyle = ChoiceStyle.
				Foreground(ChoiceFocusColor).
				Underline(true)

	TurnToStyle = lipgloss.NewStyle().Foreground(InkMutedColor)

	EndingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(InkColor)

	HelpBarStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(CoverRedColor).
				Padding(0, 1)
)

// LogKindColor returns the color of a boot log line by kind name.
func LogKindColor(kind string) lipgloss.TerminalColor {
	switch kind {
	case "error":
		return TerminalErrorColor
	case "warning":
		return TerminalWarnColor
	case "success":
		return TerminalOKColor
	case "command":
		return TerminalCmdColor
	default:
		return TerminalColor
	}
}
