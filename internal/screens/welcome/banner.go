package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/ui/theme"
)

const bannerArt = `
  ___  ___   _   _  ___  ___  ___  __  __    _    ___
 / __|/ _ \ | | | || _ \/ __|| __||  \/  |  /_\  | _ \
| (__| (_) || |_| ||   /\__ \| _| | |\/| | / _ \ |  _/
 \___|\___/  \___/ |_|_\|___/|___||_|  |_|/_/ \_\|_|`

const bannerCompact = "C O U R S E M A P"

// RenderBanner returns the banner in the primary color, falling back to a
// single line below 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
