package content

import (
	"net/url"
	"strconv"
	"strings"
)

// ImageOptions are the transformation parameters appended to store image URLs.
type ImageOptions struct {
	Width  int
	Height int
	// Fit is the imgix fit mode, "crop" when empty
	Fit string
}

var (
	HeroImage        = ImageOptions{Width: 1920, Height: 1080}
	PageHeroImage    = ImageOptions{Width: 1920, Height: 800}
	IconImage        = ImageOptions{Width: 128, Height: 128}
	LogoImage        = ImageOptions{Width: 96, Height: 96}
	PortraitImage    = ImageOptions{Width: 128, Height: 128}
	CompanyLogoImage = ImageOptions{Width: 200, Height: 80, Fit: "max"}
)

// ImageURL returns src with size, fit and format parameters added. Only
// absolute http(s) URLs are rewritten; local paths and anything unparsable
// come back unchanged. Existing query parameters are kept.
func ImageURL(src string, opts ImageOptions) string {
	if src == "" {
		return ""
	}
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return src
	}

	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return src
	}

	fit := opts.Fit
	if fit == "" {
		fit = "crop"
	}

	q := u.Query()
	if opts.Width > 0 {
		q.Set("w", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("h", strconv.Itoa(opts.Height))
	}
	q.Set("fit", fit)
	q.Set("auto", "format,compress")

	// keep auto=format,compress literal
	u.RawQuery = strings.ReplaceAll(q.Encode(), "%2C", ",")
	return u.String()
}
