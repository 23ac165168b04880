package cards

import (
	"charm.land/lipgloss/v2"

	"github.com/fffcards/fff/internal/ui/components"
	"github.com/fffcards/fff/internal/ui/theme"
)

func (s *CardsScreen) View(width, height int) string {
	switch {
	case s.phase == phaseLoading:
		return renderMessage(width, height, s.spinner.View()+" Fragen werden geladen…", "")
	case s.phase == phaseFailed:
		return renderMessage(width, height,
			theme.Failure.Render("Die Fragen konnten nicht geladen werden."),
			"r: erneut versuchen")
	case s.deck.Empty():
		return renderMessage(width, height,
			theme.Body.Render("Keine Fragen in den gewählten Kategorien."),
			"c: Kategorien wählen")
	}
	return s.renderCard(width, height)
}

func (s *CardsScreen) renderCard(width, height int) string {
	q, _ := s.deck.Current()
	cw := min(components.ContentWidth(width)+components.StripWidth+6, width)

	card := components.Card{
		Category: q.Category,
		Text:     q.Text,
		HasPrev:  s.deck.HasPrev(),
		HasNext:  s.deck.HasNext(),
	}
	progress := components.NewProgressBar(s.deck.Index()+1, s.deck.Len(), cw)

	view := lipgloss.JoinVertical(lipgloss.Left,
		card.View(cw, max(height-2, 1)),
		"",
		progress.View(),
	)
	return components.Center(view, width, height)
}

func renderMessage(width, height int, msg, hint string) string {
	content := msg
	if hint != "" {
		content += "\n\n" + theme.Hint.Render(hint)
	}
	return components.Center(lipgloss.NewStyle().Align(lipgloss.Center).Render(content), width, height)
}
