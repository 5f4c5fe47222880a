package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/schynno0/studio/internal/forms"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorBlack     = lipgloss.Color("#000001")
	colorPurple    = lipgloss.Color("#8524a6")
	colorGreen     = lipgloss.Color("#00AA55")
	colorRed       = lipgloss.Color("#D7263D")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Align(lipgloss.Center).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Align(lipgloss.Center).
			MarginBottom(2)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	menuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				PaddingLeft(2)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	commandDescStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				PaddingLeft(1)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				Underline(true)

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)

	notificationStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorGreen).
				Padding(0, 1)

	errorNotificationStyle = notificationStyle.
				BorderForeground(colorRed)

	sectionStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			MarginTop(1)
)

var badgeStyles = map[forms.Tier]lipgloss.Style{
	forms.TierDefault:     lipgloss.NewStyle().Foreground(colorBlack).Background(colorWhite).Padding(0, 1),
	forms.TierSecondary:   lipgloss.NewStyle().Foreground(colorWhite).Background(colorDarkGray).Padding(0, 1),
	forms.TierDestructive: lipgloss.NewStyle().Foreground(colorWhite).Background(colorRed).Padding(0, 1),
	forms.TierOutline:     lipgloss.NewStyle().Foreground(colorLightGray).Border(lipgloss.NormalBorder(), false, true).BorderForeground(colorGray).Padding(0, 1),
}

func badge(tier forms.Tier, text string) string {
	style, ok := badgeStyles[tier]
	if !ok {
		style = badgeStyles[forms.TierOutline]
	}

	return style.Render(text)
}

func notificationBox(n *forms.Notification, width int) string {
	style := notificationStyle
	if n.Variant == forms.VariantDestructive {
		style = errorNotificationStyle
	}

	body := lipgloss.NewStyle().Bold(true).Render(n.Title) + "\n" + n.Description

	return style.Width(max(20, width-4)).Render(body)
}

const logo = `
  ███████╗████████╗██╗   ██╗██████╗ ██╗ ██████╗
  ██╔════╝╚══██╔══╝██║   ██║██╔══██╗██║██╔═══██╗
  ███████╗   ██║   ██║   ██║██║  ██║██║██║   ██║
  ╚════██║   ██║   ██║   ██║██║  ██║██║██║   ██║
  ███████║   ██║   ╚██████╔╝██████╔╝██║╚██████╔╝
  ╚══════╝   ╚═╝    ╚═════╝ ╚═════╝ ╚═╝ ╚═════╝
`
