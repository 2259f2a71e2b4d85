package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func SiteFooter(siteName string) g.Node {
	return Footer(
		Class("site-footer"),
		ID("contact"),
		Div(
			Class("container footer-inner"),
			Div(
				Logo(siteName),
				P(Class("footer-tagline"), g.Text("Evidence-based mental health care for the world's workforces.")),
			),
			Ul(
				Class("footer-links"),
				Li(A(Href("/about"), g.Text("About"))),
				Li(A(Href("/#solutions"), g.Text("Solutions"))),
				Li(A(Href("/#book-demo"), g.Text("Book a Demo"))),
			),
			P(Class("footer-copyright"), g.Textf("© %s. All rights reserved.", siteName)),
		),
	)
}
