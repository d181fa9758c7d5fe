package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/psychtest/psyquiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ███████╗██╗   ██╗ ██████╗ ██╗   ██╗██╗███████╗
 ██╔══██╗██╔════╝╚██╗ ██╔╝██╔═══██╗██║   ██║██║╚══███╔╝
 ██████╔╝███████╗ ╚████╔╝ ██║   ██║██║   ██║██║  ███╔╝
 ██╔═══╝ ╚════██║  ╚██╔╝  ██║▄▄ ██║██║   ██║██║ ███╔╝
 ██║     ███████║   ██║   ╚██████╔╝╚██████╔╝██║███████╗
 ╚═╝     ╚══════╝   ╚═╝    ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "P S Y Q U I Z"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 55

// RenderBanner returns the banner styled in the primary color, or a
// compact one-line form when width cannot fit the block letters.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
