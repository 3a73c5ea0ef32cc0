package components

import (
	"strings"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/markup"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// RenderMarkup renders question text, styling the **emphasized**
// spans the generator marks.
func RenderMarkup(text string) string {
	var b strings.Builder
	for _, span := range markup.Parse(text) {
		switch span.Kind {
		case markup.Emphasis:
			b.WriteString(theme.Emphasis.Render(span.Text))
		default:
			b.WriteString(theme.Body.Render(span.Text))
		}
	}
	return b.String()
}
