package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

type ctaStat struct {
	Value string
	Label string
}

var ctaStats = []ctaStat{
	{"120+", "Languages Supported"},
	{"100+", "Countries Served"},
	{"24/7", "Support Available"},
}

func CTASection(cta content.CTAView, p Preset) g.Node {
	return Section(
		Class("section cta"),
		ID("book-demo"),
		Div(
			Class("container cta-inner"),
			H2(Class("cta-headline"), g.Text(cta.Headline)),
			g.If(cta.BodyHTML == "", P(Class("cta-body"), g.Text(cta.Body))),
			RichText("cta-body", cta.BodyHTML),
			Div(
				Class("cta-actions"),
				ButtonLink(cta.PrimaryLink, "btn-light btn-lg", cta.PrimaryText),
				ButtonLink(cta.SecondaryLink, "btn-outline-light btn-lg", cta.SecondaryText),
			),
			g.If(p.Decorated(),
				Div(
					Class("grid grid-3 cta-stats"),
					g.Group(g.Map(ctaStats, func(s ctaStat) g.Node {
						return Div(
							Div(Class("cta-stat-value"), g.Text(s.Value)),
							Div(Class("cta-stat-label"), g.Text(s.Label)),
						)
					})),
				),
			),
		),
	)
}
