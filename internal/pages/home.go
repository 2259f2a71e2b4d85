// Package pages composes page content from the content layer and renders
// it with the section components.
package pages

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/components"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

// Source is the content the pages read.
type Source interface {
	GetHomepageSections(ctx context.Context) ([]content.HomepageSection, error)
	GetStatistics(ctx context.Context) ([]content.Statistic, error)
	GetSolutions(ctx context.Context) ([]content.Solution, error)
	GetCaseStudies(ctx context.Context) ([]content.CaseStudy, error)
	GetFeatures(ctx context.Context) ([]content.Feature, error)
	GetIntegrations(ctx context.Context) ([]content.Integration, error)
	GetPricingPlans(ctx context.Context) ([]content.PricingPlan, error)
	GetFAQItems(ctx context.Context) ([]content.FAQItem, error)
	GetPage(ctx context.Context, slug string) (*content.Page, error)
}

// Home loads the homepage.
type Home struct {
	src Source
	log *slog.Logger
}

func NewHome(src Source, log *slog.Logger) *Home {
	return &Home{src: src, log: log.With(logger.Scope("pages.home"))}
}

// Load fetches every category the homepage shows concurrently and waits for
// all of them. If any fetch fails the whole load fails; the others are left
// to finish and their results are discarded.
func (h *Home) Load(ctx context.Context) (*components.HomeContent, error) {
	var (
		sections     []content.HomepageSection
		statistics   []content.Statistic
		solutions    []content.Solution
		caseStudies  []content.CaseStudy
		features     []content.Feature
		integrations []content.Integration
		plans        []content.PricingPlan
		faqs         []content.FAQItem
	)

	start := time.Now()

	var eg errgroup.Group
	eg.Go(func() (err error) {
		sections, err = h.src.GetHomepageSections(ctx)
		return err
	})
	eg.Go(func() (err error) {
		statistics, err = h.src.GetStatistics(ctx)
		return err
	})
	eg.Go(func() (err error) {
		solutions, err = h.src.GetSolutions(ctx)
		return err
	})
	eg.Go(func() (err error) {
		caseStudies, err = h.src.GetCaseStudies(ctx)
		return err
	})
	eg.Go(func() (err error) {
		features, err = h.src.GetFeatures(ctx)
		return err
	})
	eg.Go(func() (err error) {
		integrations, err = h.src.GetIntegrations(ctx)
		return err
	})
	eg.Go(func() (err error) {
		plans, err = h.src.GetPricingPlans(ctx)
		return err
	})
	eg.Go(func() (err error) {
		faqs, err = h.src.GetFAQItems(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		h.log.Warn("homepage load failed", logger.Error(err), slog.Duration("duration", time.Since(start)))
		return nil, err
	}

	h.log.Debug("homepage loaded",
		slog.Int("sections", len(sections)),
		slog.Int("statistics", len(statistics)),
		slog.Duration("duration", time.Since(start)),
	)

	return &components.HomeContent{
		Hero: content.ResolveHero(content.FindSection(sections, content.SectionHero)),
		CTA:  content.ResolveCTA(content.FindSection(sections, content.SectionCTA)),

		StatsHeading:        content.ResolveSectionHeading(content.FindSection(sections, content.SectionStats), content.StatsHeading),
		SolutionsHeading:    content.SolutionsHeading,
		FeaturesHeading:     content.ResolveSectionHeading(content.FindSection(sections, content.SectionFeatures), content.FeaturesHeading),
		IntegrationsHeading: content.IntegrationsHeading,
		PricingHeading:      content.PricingHeading,
		TestimonialsHeading: content.ResolveSectionHeading(content.FindSection(sections, content.SectionTestimonials), content.TestimonialsHeading),
		FAQHeading:          content.FAQHeading,

		Statistics:   content.ResolveAll(statistics, content.ResolveStatistic),
		Solutions:    content.ResolveAll(solutions, content.ResolveSolution),
		Features:     content.ResolveAll(features, content.ResolveFeature),
		Integrations: content.ResolveAll(integrations, content.ResolveIntegration),
		PricingPlans: content.ResolveAll(plans, content.ResolvePricingPlan),
		Testimonials: content.ResolveAll(caseStudies, content.ResolveTestimonial),
		FAQs:         content.ResolveAll(faqs, content.ResolveFAQ),
	}, nil
}
