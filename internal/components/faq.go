package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

// FAQSection renders questions as disclosure widgets, and nothing when there
// are none.
func FAQSection(heading content.SectionHeading, items []content.FAQView, p Preset) g.Node {
	if len(items) == 0 {
		return nothing()
	}

	return Section(
		Class("section faq"),
		ID("resources"),
		Div(
			Class("container container-narrow"),
			SectionHeader(heading, p),
			g.Group(g.Map(items, func(f content.FAQView) g.Node {
				return Details(
					Class("faq-item"),
					Summary(
						g.If(p.Decorated(), Span(Class("badge badge-category"), g.Text(f.Category))),
						g.Text(f.Question),
					),
					RichText("faq-answer", f.Answer),
				)
			})),
		),
	)
}
