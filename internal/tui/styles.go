package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPink      = lipgloss.AdaptiveColor{Light: "#D6008F", Dark: "#FF00AA"}
	colorBlue      = lipgloss.AdaptiveColor{Light: "#0088B3", Dark: "#00CCFF"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#00FF41"}
	colorText      = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#D0D0D0"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#111111"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}

	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			PaddingLeft(1)

	logoAccentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPink)

	langBadgeStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Padding(0, 1)

	counterStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	cardDescStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorDim)

	cardBodyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	thumbStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	noImageStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	actionKeyStyle = lipgloss.NewStyle().
			Foreground(colorPink).
			Bold(true)

	actionLinkStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	actionShareStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	noticeErrStyle = lipgloss.NewStyle().
			Foreground(colorPink)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorPink)

	loadingTextStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPink).
			Padding(1, 2)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
