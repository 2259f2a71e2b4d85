package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

var progressWidths = []string{"w-full", "w-5/6", "w-4/5", "w-full"}

// StatsSection renders one block per statistic in the given order, and
// nothing at all when there are none.
func StatsSection(heading content.SectionHeading, stats []content.StatisticView, p Preset) g.Node {
	if len(stats) == 0 {
		return nothing()
	}

	return Section(
		Class("section stats"),
		ID("learn-more"),
		Div(
			Class("container"),
			SectionHeader(heading, p),
			Div(
				Class("grid grid-4"),
				g.Group(mapIndexed(stats, func(i int, s content.StatisticView) g.Node {
					return Div(
						Class("stat"),
						g.Attr("data-stat-id", s.ID),
						g.If(s.Icon != "", Div(Class("stat-icon"), g.Text(s.Icon))),
						Div(Class("stat-value"), g.Text(s.Value)),
						P(Class("stat-description"), g.Text(s.Description)),
						g.If(p.Decorated(), g.Group([]g.Node{
							Div(
								Class("progress"),
								Div(Class("progress-bar "+progressWidths[i%len(progressWidths)])),
							),
							Ordinal(i),
						})),
					)
				})),
			),
			g.If(p.Decorated(),
				Div(
					Class("callout callout-inverse"),
					H3(g.Text("Ready to Join Them?")),
					P(g.Text("Start your organization's mental health transformation today.")),
					ButtonLink("#book-demo", "btn-light", "Get Started Now"),
				),
			),
		),
	)
}

func mapIndexed[T any](items []T, fn func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(i, item))
	}
	return nodes
}
