package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
)

// Card variants.
const (
	CardDefault  = "default"
	CardElevated = "elevated"
	CardOutlined = "outlined"
)

// Card wraps children in a rounded panel. Extra classes are appended.
func Card(variant, class string, children ...g.Node) g.Node {
	classes := []string{"card", "card-" + variant}
	if variant == "" {
		classes[1] = "card-" + CardDefault
	}
	if class != "" {
		classes = append(classes, class)
	}
	return Div(
		Class(strings.Join(classes, " ")),
		g.Group(children),
	)
}

func Logo(name string) g.Node {
	return A(
		Href("/"),
		Class("logo"),
		Span(Class("logo-text"), g.Text(name)),
	)
}

// SectionHeader renders the heading block above a section. The eyebrow
// badge is decorated-only.
func SectionHeader(h content.SectionHeading, p Preset) g.Node {
	return Div(
		Class("section-header"),
		g.If(p.Decorated() && h.Eyebrow != "",
			Span(Class("badge badge-eyebrow"), g.Text(h.Eyebrow)),
		),
		H2(Class("section-title"), g.Text(h.Title)),
		g.If(h.Subtitle != "",
			P(Class("section-subtitle"), g.Text(h.Subtitle)),
		),
	)
}

// RichText emits store-authored HTML as is.
func RichText(class, html string) g.Node {
	if strings.TrimSpace(html) == "" {
		return nothing()
	}
	return Div(Class("prose "+class), g.Raw(html))
}

// Image renders a fixed-size lazy image, or nothing when src is empty.
func Image(src, alt, width, height, class string) g.Node {
	if src == "" {
		return nothing()
	}
	return Img(
		Src(src),
		Alt(alt),
		Width(width),
		Height(height),
		g.Attr("loading", "lazy"),
		Class(class),
	)
}

func ButtonLink(href, class, text string) g.Node {
	return A(Href(href), Class("btn "+class), g.Text(text))
}

// Ordinal is the small numbered marker on decorated cards.
func Ordinal(index int) g.Node {
	return Span(Class("ordinal"), g.Attr("aria-hidden", "true"), g.Textf("%d", index+1))
}
