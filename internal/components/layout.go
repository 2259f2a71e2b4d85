package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	defaultTitle       = "Intellect - Redefining Mental Health Access and Quality"
	defaultDescription = "Empowering the world's largest organisations and 4 million members globally with evidence-based and hyperlocalised mental health care, all in one ecosystem."
)

type PageConfig struct {
	Title       string
	Description string
	Site        Site
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}

	if config.Description == "" {
		config.Description = defaultDescription
	}

	siteName := config.Site.name()

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-preset", string(config.Site.Preset)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(Name("keywords"), Content("mental health, employee assistance, EAP, workplace wellness, therapy, counseling")),
				Meta(Name("robots"), Content("index, follow")),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:site_name"), Content(siteName)),
				Meta(g.Attr("property", "og:locale"), Content("en_US")),
				Meta(Name("twitter:card"), Content("summary_large_image")),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				SiteTopbar(siteName),
				Main(
					Class("site-main"),
					g.Group(content),
				),
				SiteFooter(siteName),
			),
		),
	})
}
