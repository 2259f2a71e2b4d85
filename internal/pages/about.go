package pages

import (
	"context"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/apperror"
)

// AboutSlug is the page record the about route shows.
const AboutSlug = "about-us"

type About struct {
	src Source
}

func NewAbout(src Source) *About {
	return &About{src: src}
}

// Load returns the about page. A missing page record is a not-found error,
// never an empty page.
func (a *About) Load(ctx context.Context) (*content.PageView, error) {
	page, err := a.src.GetPage(ctx, AboutSlug)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, apperror.NewNotFound("page", AboutSlug)
	}

	view := content.ResolvePage(*page)
	return &view, nil
}
