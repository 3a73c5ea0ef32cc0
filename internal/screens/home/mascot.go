package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// The monster grows with the evolution stage (0-3).

const mascotEgg = ` ╭───╮
 │ ? │
 ╰───╯`

const mascotHatchling = `┌─────┐
│ • • │
│  ▽  │
└─────┘`

const mascotMonster = `┌───────┐
│ ◉   ◉ │
│   ▽   │
│ ᴖᴖᴖᴖᴖ │
└─┬───┬─┘`

const mascotKing = ` ♛ ♛ ♛
┌───────┐
│ ★   ★ │
│   ▽   │
│ ᴖᴖᴖᴖᴖ │
└─┬───┬─┘`

var mascotColors = []color.Color{theme.TextDim, theme.Primary, theme.Secondary, theme.Accent}

// RenderMascot returns the monster art for an evolution stage.
func RenderMascot(stage int) string {
	arts := []string{mascotEgg, mascotHatchling, mascotMonster, mascotKing}
	if stage < 0 {
		stage = 0
	}
	if stage >= len(arts) {
		stage = len(arts) - 1
	}
	return lipgloss.NewStyle().
		Foreground(mascotColors[stage]).
		Render(arts[stage])
}

// MascotName returns the Turkish display name for an evolution stage.
func MascotName(stage int) string {
	names := []string{"Yumurta", "Yavru Canavar", "Soru Canavarı", "Canavar Kralı"}
	if stage < 0 || stage >= len(names) {
		return names[0]
	}
	return names[stage]
}
