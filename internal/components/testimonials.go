package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

var accentDots = []string{"dot-blue", "dot-green", "dot-purple"}

// TestimonialsSection renders case study quotes, and nothing when there are none.
func TestimonialsSection(heading content.SectionHeading, items []content.TestimonialView, p Preset) g.Node {
	if len(items) == 0 {
		return nothing()
	}

	return Section(
		Class("section testimonials"),
		ID("testimonials"),
		Div(
			Class("container"),
			SectionHeader(heading, p),
			Div(
				Class("grid grid-3"),
				g.Group(mapIndexed(items, func(i int, t content.TestimonialView) g.Node {
					return Card(CardDefault, "testimonial",
						g.If(p.Decorated(), Span(Class("accent-dot "+accentDots[i%len(accentDots)]))),
						g.If(t.Quote != "", BlockQuote(Class("quote"), g.Textf("“%s”", t.Quote))),
						Div(
							Class("client"),
							Image(t.ClientPhoto, clientAlt(t.ClientName), "64", "64", "client-photo"),
							Div(
								Div(Class("client-name"), g.Text(t.ClientName)),
								g.If(t.ClientTitle != "", Div(Class("client-title"), g.Text(t.ClientTitle))),
							),
						),
						g.If(t.Results != "",
							Div(
								Class("results"),
								H4(g.Text("Key Results")),
								P(g.Text(t.Results)),
							),
						),
						g.If(t.CompanyLogo != "",
							Div(Class("company-logo"), Image(t.CompanyLogo, "Company logo", "120", "48", "")),
						),
					)
				})),
			),
		),
	)
}

func clientAlt(name string) string {
	if name == "" {
		return "Client photo"
	}
	return name
}
