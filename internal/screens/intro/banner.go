package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/fffcards/fff/internal/ui/theme"
)

const bannerArt = `███████╗███████╗███████╗
██╔════╝██╔════╝██╔════╝
█████╗  █████╗  █████╗
██╔══╝  ██╔══╝  ██╔══╝
██║     ██║     ██║
╚═╝     ╚═╝     ╚═╝`

const bannerCompact = "f f f"

// RenderBanner returns the fff banner in the primary colour, compact on
// terminals narrower than 40 columns or shorter than 20 rows.
func RenderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 || height < 20 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
