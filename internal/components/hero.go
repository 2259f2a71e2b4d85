package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

// HeroSection renders the page hero. A hero is always shown; missing fields
// were already defaulted by content.ResolveHero.
func HeroSection(hero content.HeroView, p Preset) g.Node {
	return Section(
		Class("hero"),
		ID("hero"),
		g.If(hero.BackgroundImage != "",
			g.Group([]g.Node{
				Div(
					Class("hero-background"),
					g.Attr("style", fmt.Sprintf("background-image: url('%s')", hero.BackgroundImage)),
				),
				Div(Class("hero-overlay")),
			}),
		),
		Div(
			Class("container hero-inner"),
			H1(Class("hero-headline"), g.Text(hero.Headline)),
			P(Class("hero-subheadline"), g.Text(hero.Subheadline)),
			RichText("hero-body", hero.Body),
			Div(
				Class("hero-actions"),
				ButtonLink(hero.CTALink, "btn-primary btn-lg", hero.CTAText),
				g.If(p.Decorated(),
					ButtonLink("#learn-more", "btn-outline btn-lg", "Learn More"),
				),
			),
		),
	)
}
