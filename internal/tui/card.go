package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/wikiscroll/internal/i18n"
	"github.com/matheuskafuri/wikiscroll/internal/wiki"
)

const (
	maxCardWidth  = 80
	maxTitleLines = 3
)

// renderCard draws one summary filling a width x height area. footer, if
// non-empty, is placed under the card (the loading sentinel).
func renderCard(s wiki.Summary, uiLang wiki.Language, width, height int, footer string) string {
	cardWidth := width - 4
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}
	if cardWidth < 20 {
		cardWidth = 20
	}
	inner := cardWidth - 2

	var head []string
	if s.HasThumbnail() {
		dims := fmt.Sprintf("▣ %d×%d", s.Thumbnail.Width, s.Thumbnail.Height)
		head = append(head, thumbStyle.Render(dims)+" "+noImageStyle.Render(truncateStr(s.Thumbnail.Source, inner-lipgloss.Width(dims)-1)))
	} else {
		head = append(head, noImageStyle.Render("W · "+i18n.T(uiLang, i18n.KeyNoImage)))
	}
	head = append(head, "")
	for _, l := range clampLines(wrapText(s.Title, inner), maxTitleLines, inner) {
		head = append(head, cardTitleStyle.Render(l))
	}
	if s.Description != "" {
		head = append(head, cardDescStyle.Render(truncateStr(s.Description, inner)))
	}
	head = append(head, "")

	actions := actionKeyStyle.Render("[o]") + " " + actionLinkStyle.Render(i18n.T(uiLang, i18n.KeyReadOnWikipedia)) +
		"   " + actionKeyStyle.Render("[s]") + " " + actionShareStyle.Render(i18n.T(uiLang, i18n.KeyShare))
	tail := []string{"", actions}

	footerLines := 0
	if footer != "" {
		footerLines = strings.Count(footer, "\n") + 2
	}

	// 2 for the border
	room := height - 2 - len(head) - len(tail) - footerLines
	if room < 1 {
		room = 1
	}
	extract := clampLines(wrapText(s.Extract, inner), room, inner)

	body := make([]string, 0, len(head)+len(extract)+len(tail))
	body = append(body, head...)
	for _, l := range extract {
		body = append(body, cardBodyStyle.Render(l))
	}
	body = append(body, tail...)

	box := cardStyle.Width(cardWidth).Render(strings.Join(body, "\n"))
	if footer != "" {
		box += "\n\n" + lipgloss.PlaceHorizontal(lipgloss.Width(box), lipgloss.Center, footer)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderSentinel is the loading indicator shown past the last card.
func renderSentinel(spin string, uiLang wiki.Language) string {
	return spin + " " + loadingTextStyle.Render(i18n.T(uiLang, i18n.KeyLoading))
}
