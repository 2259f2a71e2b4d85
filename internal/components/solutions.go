package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

var solutionTags = []string{"🏢 Enterprise", "🛡️ Specialized", "🏥 Healthcare"}

// SolutionsSection renders the solution cards. With no solutions the
// decorated preset shows the built-in set and the minimal preset shows nothing.
func SolutionsSection(heading content.SectionHeading, solutions []content.SolutionView, p Preset) g.Node {
	if len(solutions) == 0 {
		if !p.Decorated() {
			return nothing()
		}
		solutions = content.DefaultSolutions()
	}

	return Section(
		Class("section solutions"),
		ID("solutions"),
		Div(
			Class("container"),
			SectionHeader(heading, p),
			Div(
				Class("grid grid-3"),
				g.Group(mapIndexed(solutions, func(i int, s content.SolutionView) g.Node {
					return Card(CardDefault, "solution",
						Image(s.Icon, s.Name, "64", "64", "card-icon"),
						g.If(p.Decorated() && s.Icon != "", Ordinal(i)),
						g.If(s.Category != "", Div(Class("card-category"), g.Text(s.Category))),
						H3(Class("card-title"), g.Text(s.Name)),
						g.If(s.ShortDescription != "", P(Class("card-text"), g.Text(s.ShortDescription))),
						RichText("card-detail", s.FullDescription),
						g.If(p.Decorated(),
							Div(
								Class("card-footer"),
								A(Href("#contact"), Class("link"), g.Text("Learn More")),
								Span(Class("card-tag"), g.Text(solutionTags[min(i, len(solutionTags)-1)])),
							),
						),
					)
				})),
			),
			g.If(p.Decorated(),
				Div(
					Class("callout"),
					P(g.Text("Need a custom solution for your organization?")),
					ButtonLink("#contact", "btn-primary btn-lg", "Contact Our Experts"),
				),
			),
		),
	)
}
