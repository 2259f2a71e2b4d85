package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

// PricingSection renders the plan cards, using the built-in plans when none
// are given.
func PricingSection(heading content.SectionHeading, plans []content.PricingPlanView, p Preset) g.Node {
	plans = orDefaults(plans, content.DefaultPricingPlans)

	return Section(
		Class("section pricing"),
		ID("pricing"),
		Div(
			Class("container"),
			SectionHeader(heading, p),
			Div(
				Class("grid grid-3"),
				g.Group(g.Map(plans, func(plan content.PricingPlanView) g.Node {
					return pricingCard(plan, p)
				})),
			),
			g.If(p.Decorated(),
				Div(
					Class("callout"),
					H3(g.Text("Not sure which plan is right for you?")),
					P(g.Text("Our team can help you find the perfect solution for your organization's unique needs and budget.")),
					Div(
						Class("callout-actions"),
						ButtonLink("#book-demo", "btn-primary btn-lg", "Schedule Consultation"),
						ButtonLink("#pricing", "btn-outline btn-lg", "Compare All Features"),
					),
				),
			),
		),
	)
}

func pricingCard(plan content.PricingPlanView, p Preset) g.Node {
	class := "plan"
	buttonClass := "btn-outline btn-block"
	if plan.Popular {
		class += " plan-popular"
		buttonClass = "btn-primary btn-block"
	}

	note := "14-day free trial"
	if plan.Name == "Enterprise" {
		note = "Custom onboarding included"
	}

	return Card(CardElevated, class,
		g.If(plan.Popular, Span(Class("badge badge-popular"), g.Text("Most Popular"))),
		Div(
			Class("plan-header"),
			H3(Class("plan-name"), g.Text(plan.Name)),
			Div(
				Class("plan-price"),
				Span(Class("plan-amount"), g.Text(plan.Price)),
				g.If(plan.BillingPeriod != "", Span(Class("plan-period"), g.Text("/ "+plan.BillingPeriod))),
			),
			g.If(plan.Description != "", P(Class("card-text"), g.Text(plan.Description))),
		),
		Ul(
			Class("plan-features"),
			g.Group(g.Map(plan.Features, func(f string) g.Node {
				return Li(Span(Class("check"), g.Text("✓")), g.Text(f))
			})),
		),
		ButtonLink("#book-demo", buttonClass, plan.CTAText),
		g.If(p.Decorated(), P(Class("plan-note"), g.Text(note))),
	)
}
