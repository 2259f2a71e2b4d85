package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

// HomeContent is everything the homepage renders, already resolved.
type HomeContent struct {
	Hero content.HeroView
	CTA  content.CTAView

	StatsHeading        content.SectionHeading
	SolutionsHeading    content.SectionHeading
	FeaturesHeading     content.SectionHeading
	IntegrationsHeading content.SectionHeading
	PricingHeading      content.SectionHeading
	TestimonialsHeading content.SectionHeading
	FAQHeading          content.SectionHeading

	Statistics   []content.StatisticView
	Solutions    []content.SolutionView
	Features     []content.FeatureView
	Integrations []content.IntegrationView
	PricingPlans []content.PricingPlanView
	Testimonials []content.TestimonialView
	FAQs         []content.FAQView
}

func HomePage(site Site, home HomeContent) g.Node {
	p := site.Preset
	return Layout(
		PageConfig{Site: site},
		HeroSection(home.Hero, p),
		StatsSection(home.StatsHeading, home.Statistics, p),
		SolutionsSection(home.SolutionsHeading, home.Solutions, p),
		FeaturesSection(home.FeaturesHeading, home.Features, p),
		IntegrationsSection(home.IntegrationsHeading, home.Integrations, p),
		PricingSection(home.PricingHeading, home.PricingPlans, p),
		TestimonialsSection(home.TestimonialsHeading, home.Testimonials, p),
		FAQSection(home.FAQHeading, home.FAQs, p),
		CTASection(home.CTA, p),
	)
}

// AboutPage renders the about page. The title sits over the hero image when
// there is one and above the body otherwise.
func AboutPage(site Site, page content.PageView) g.Node {
	return Layout(
		PageConfig{
			Title:       fmt.Sprintf("%s - %s", page.Title, site.name()),
			Description: page.MetaDescription,
			Site:        site,
		},
		g.If(page.HeroImage != "",
			Section(
				Class("page-hero"),
				Div(
					Class("hero-background"),
					g.Attr("style", fmt.Sprintf("background-image: url('%s')", page.HeroImage)),
				),
				Div(Class("hero-overlay")),
				Div(
					Class("container hero-inner"),
					H1(Class("page-title page-title-inverse"), g.Text(page.Title)),
				),
			),
		),
		Section(
			Class("section page-body"),
			Div(
				Class("container container-narrow"),
				g.If(page.HeroImage == "", H1(Class("page-title"), g.Text(page.Title))),
				RichText("page-content", page.Body),
			),
		),
	)
}

func NotFoundPage(site Site) g.Node {
	return Layout(
		PageConfig{Title: "Page Not Found - " + site.name(), Site: site},
		statusBody("404", "Page not found", "The page you are looking for does not exist or has moved."),
	)
}

// ErrorPage is shown when content could not be loaded. It never includes
// the underlying error.
func ErrorPage(site Site) g.Node {
	return Layout(
		PageConfig{Title: "Something went wrong - " + site.name(), Site: site},
		statusBody("500", "Something went wrong", "We could not load this page. Please try again in a moment."),
	)
}

func statusBody(code, title, message string) g.Node {
	return Section(
		Class("section status-page"),
		Div(
			Class("container container-narrow"),
			P(Class("status-code"), g.Text(code)),
			H1(Class("page-title"), g.Text(title)),
			P(Class("section-subtitle"), g.Text(message)),
			ButtonLink("/", "btn-primary", "Back to home"),
		),
	)
}
