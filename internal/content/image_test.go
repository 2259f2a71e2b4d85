package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		opts     ImageOptions
		expected string
	}{
		{
			name:     "hero crop",
			src:      "https://imgix.cosmicjs.com/hero.jpg",
			opts:     HeroImage,
			expected: "https://imgix.cosmicjs.com/hero.jpg?auto=format,compress&fit=crop&h=1080&w=1920",
		},
		{
			name:     "company logo max fit",
			src:      "https://imgix.cosmicjs.com/logo.png",
			opts:     CompanyLogoImage,
			expected: "https://imgix.cosmicjs.com/logo.png?auto=format,compress&fit=max&h=80&w=200",
		},
		{
			name:     "existing query kept",
			src:      "https://imgix.cosmicjs.com/a.png?dpr=2",
			opts:     IconImage,
			expected: "https://imgix.cosmicjs.com/a.png?auto=format,compress&dpr=2&fit=crop&h=128&w=128",
		},
		{
			name:     "existing size replaced",
			src:      "https://imgix.cosmicjs.com/a.png?w=10",
			opts:     LogoImage,
			expected: "https://imgix.cosmicjs.com/a.png?auto=format,compress&fit=crop&h=96&w=96",
		},
		{
			name:     "local path untouched",
			src:      "/images/features-1.jpg",
			opts:     IconImage,
			expected: "/images/features-1.jpg",
		},
		{
			name:     "empty",
			src:      "",
			opts:     IconImage,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImageURL(tt.src, tt.opts))
		})
	}
}
