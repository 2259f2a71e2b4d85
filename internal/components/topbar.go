package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type NavItem struct {
	Name string
	Href string
}

var navigation = []NavItem{
	{"Solutions", "#solutions"},
	{"Resources", "#resources"},
	{"About", "/about"},
	{"Contact", "#contact"},
}

func SiteTopbar(siteName string) g.Node {
	return Header(
		Class("topbar"),
		Nav(
			Class("container topbar-inner"),
			Logo(siteName),
			Div(
				Class("topbar-links"),
				g.Group(g.Map(navigation, func(item NavItem) g.Node {
					return A(Href(item.Href), Class("topbar-link"), g.Text(item.Name))
				})),
				ButtonLink("#book-demo", "btn-primary", "Book Demo"),
			),
			// no-script menu for small screens
			Details(
				Class("topbar-mobile"),
				Summary(g.Attr("aria-label", "Toggle menu"), g.Text("Menu")),
				Ul(
					g.Group(g.Map(navigation, func(item NavItem) g.Node {
						return Li(A(Href(item.Href), g.Text(item.Name)))
					})),
					Li(ButtonLink("#book-demo", "btn-primary", "Book Demo")),
				),
			),
		),
	)
}
