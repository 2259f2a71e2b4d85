package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

// FeaturesSection renders the feature cards, using the built-in features
// when none are given.
func FeaturesSection(heading content.SectionHeading, features []content.FeatureView, p Preset) g.Node {
	features = orDefaults(features, content.DefaultFeatures)

	return Section(
		Class("section features"),
		ID("features"),
		Div(
			Class("container"),
			SectionHeader(heading, p),
			Div(
				Class("grid grid-3"),
				g.Group(g.Map(features, func(f content.FeatureView) g.Node {
					return Card(CardElevated, "feature",
						Image(f.Icon, f.Name, "64", "64", "card-icon"),
						H3(Class("card-title"), g.Text(f.Name)),
						g.If(f.Description != "", P(Class("card-text"), g.Text(f.Description))),
						g.If(f.Benefit != "",
							Div(Class("benefit"), Span(Class("benefit-mark"), g.Text("✓")), g.Text(f.Benefit)),
						),
					)
				})),
			),
			g.If(p.Decorated(),
				Div(
					Class("callout"),
					H3(g.Text("See All Features in Action")),
					P(g.Text("Experience the full power of our mental health platform with a personalized demo.")),
					Div(
						Class("callout-actions"),
						ButtonLink("#book-demo", "btn-primary", "Request Demo"),
						ButtonLink("#resources", "btn-outline", "View Documentation"),
					),
				),
			),
		),
	)
}
