package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

// IntegrationsSection renders integrations grouped by category, using the
// built-in integrations when none are given.
func IntegrationsSection(heading content.SectionHeading, integrations []content.IntegrationView, p Preset) g.Node {
	groups := content.GroupIntegrations(orDefaults(integrations, content.DefaultIntegrations))

	return Section(
		Class("section integrations"),
		ID("integrations"),
		Div(
			Class("container"),
			SectionHeader(heading, p),
			g.Group(g.Map(groups, func(group content.IntegrationGroup) g.Node {
				return Div(
					Class("integration-group"),
					H3(
						Class("integration-category"),
						g.If(p.Decorated(), Span(Class("integration-category-icon"), g.Text(group.Icon))),
						g.Text(group.Category),
					),
					Div(
						Class("grid grid-3"),
						g.Group(g.Map(group.Items, func(i content.IntegrationView) g.Node {
							return integrationCard(i, p)
						})),
					),
				)
			})),
			g.If(p.Decorated(),
				Div(
					Class("callout"),
					H3(g.Text("Custom Integrations")),
					P(g.Text("Don't see your tool? Use our robust API to build custom integrations that fit your unique workflow.")),
					Div(
						Class("callout-actions"),
						ButtonLink("#resources", "btn-primary", "View API Documentation"),
						ButtonLink("#contact", "btn-outline", "Request Integration"),
					),
				),
			),
		),
	)
}

func integrationCard(i content.IntegrationView, p Preset) g.Node {
	return Card(CardOutlined, "integration",
		Div(
			Class("integration-body"),
			Image(i.Logo, i.Name, "48", "48", "integration-logo"),
			Div(
				H4(Class("card-title"), g.Text(i.Name)),
				g.If(i.Description != "", P(Class("card-text"), g.Text(i.Description))),
			),
		),
		g.If(p.Decorated(),
			Div(
				Class("integration-status"),
				Span(Class("status-dot")),
				Span(g.Text("Available")),
				Span(Class("muted"), g.Text("5 min setup")),
			),
		),
	)
}
