package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/wikiscroll/internal/i18n"
	"github.com/matheuskafuri/wikiscroll/internal/wiki"
)

func renderHeader(lang wiki.Language, cursor, total, width int) string {
	left := logoStyle.Render("Wiki") + logoAccentStyle.Render("Scroll")

	counter := ""
	if total > 0 {
		counter = counterStyle.Render(fmt.Sprintf("%d/%d", cursor+1, total))
	}
	right := counter + langBadgeStyle.Render("◍ "+string(lang))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func renderStatusBar(lang wiki.Language, notice string, noticeErr bool, width int) string {
	left := ""
	if notice != "" {
		if noticeErr {
			left = noticeErrStyle.Render(notice)
		} else {
			left = noticeStyle.Render(notice)
		}
	}

	right := fmt.Sprintf(" j %s  k %s  L %s  ? %s  q %s ",
		i18n.T(lang, i18n.KeyNext),
		i18n.T(lang, i18n.KeyPrev),
		i18n.T(lang, i18n.KeyLanguage),
		i18n.T(lang, i18n.KeyHelp),
		i18n.T(lang, i18n.KeyQuit),
	)

	// Inner width excludes the bar's horizontal padding.
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
		right = ""
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
