package content

import "strings"

// SectionHeading is the eyebrow, title and subtitle above a section.
type SectionHeading struct {
	Eyebrow  string
	Title    string
	Subtitle string
}

// HeroView is the top-of-page hero. Body is rich text.
type HeroView struct {
	Headline        string
	Subheadline     string
	Body            string
	CTAText         string
	CTALink         string
	BackgroundImage string
}

type CTAView struct {
	Headline      string
	Body          string
	BodyHTML      string // rich text; replaces Body when set
	PrimaryText   string
	PrimaryLink   string
	SecondaryText string
	SecondaryLink string
}

type StatisticView struct {
	ID          string
	Value       string
	Description string
	Icon        string
}

// SolutionView is one solution card. FullDescription is rich text.
type SolutionView struct {
	ID               string
	Name             string
	ShortDescription string
	FullDescription  string
	Icon             string
	Category         string
}

type FeatureView struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Benefit     string
}

type IntegrationView struct {
	ID          string
	Name        string
	Description string
	Logo        string
	Category    string
}

type IntegrationGroup struct {
	Category string
	Icon     string
	Items    []IntegrationView
}

type PricingPlanView struct {
	ID            string
	Name          string
	Price         string
	BillingPeriod string
	Description   string
	Features      []string
	Popular       bool
	CTAText       string
}

type TestimonialView struct {
	ID          string
	ClientName  string
	ClientTitle string
	Quote       string
	ClientPhoto string
	CompanyLogo string
	Results     string
}

// FAQView is one question. Answer is rich text.
type FAQView struct {
	ID       string
	Question string
	Answer   string
	Category string
}

type PageView struct {
	Title           string
	Body            string
	MetaDescription string
	HeroImage       string
}

func or(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// ResolveHero builds the hero from a hero section, or the default hero when
// section is nil.
func ResolveHero(section *HomepageSection) HeroView {
	hero := DefaultHero()
	if section == nil {
		return hero
	}
	m := section.Metadata
	hero.Headline = or(m.Headline, hero.Headline)
	hero.Subheadline = or(m.Subheadline, hero.Subheadline)
	hero.Body = m.Content
	hero.CTAText = or(m.CTAText, hero.CTAText)
	hero.CTALink = or(m.CTALink, hero.CTALink)
	hero.BackgroundImage = ImageURL(m.BackgroundImage.Src(), HeroImage)
	return hero
}

// ResolveSectionHeading overrides fallback's title and subtitle with the
// section's headline and subheadline when set.
func ResolveSectionHeading(section *HomepageSection, fallback SectionHeading) SectionHeading {
	if section == nil {
		return fallback
	}
	return SectionHeading{
		Eyebrow:  fallback.Eyebrow,
		Title:    or(section.Metadata.Headline, fallback.Title),
		Subtitle: or(section.Metadata.Subheadline, fallback.Subtitle),
	}
}

// ResolveCTA builds the closing call to action. The secondary link is fixed.
func ResolveCTA(section *HomepageSection) CTAView {
	cta := DefaultCTA()
	if section == nil {
		return cta
	}
	m := section.Metadata
	cta.Headline = or(m.Headline, cta.Headline)
	switch {
	case strings.TrimSpace(m.Subheadline) != "":
		cta.Body = m.Subheadline
	case strings.TrimSpace(m.Content) != "":
		cta.Body = ""
		cta.BodyHTML = m.Content
	}
	cta.PrimaryText = or(m.CTAText, cta.PrimaryText)
	cta.PrimaryLink = or(m.CTALink, cta.PrimaryLink)
	return cta
}

func ResolveStatistic(s Statistic) StatisticView {
	return StatisticView{
		ID:          s.ID,
		Value:       s.Metadata.Value,
		Description: or(s.Metadata.Description, s.Title),
		Icon:        s.Metadata.Icon,
	}
}

func ResolveSolution(s Solution) SolutionView {
	return SolutionView{
		ID:               s.ID,
		Name:             or(s.Metadata.SolutionName, s.Title),
		ShortDescription: s.Metadata.ShortDescription,
		FullDescription:  s.Metadata.FullDescription,
		Icon:             ImageURL(s.Metadata.Icon.Src(), IconImage),
		Category:         s.Metadata.Category.Label(),
	}
}

func ResolveFeature(f Feature) FeatureView {
	return FeatureView{
		ID:          f.ID,
		Name:        or(f.Metadata.FeatureName, f.Title),
		Description: f.Metadata.Description,
		Icon:        ImageURL(f.Metadata.Icon.Src(), IconImage),
		Benefit:     f.Metadata.Benefit,
	}
}

func ResolveIntegration(i Integration) IntegrationView {
	return IntegrationView{
		ID:          i.ID,
		Name:        or(i.Metadata.IntegrationName, i.Title),
		Description: i.Metadata.Description,
		Logo:        ImageURL(i.Metadata.Logo.Src(), LogoImage),
		Category:    or(i.Metadata.Category.Label(), DefaultIntegrationCategory),
	}
}

func ResolvePricingPlan(p PricingPlan) PricingPlanView {
	features := []string(p.Metadata.Features)
	if features == nil {
		features = []string{}
	}
	return PricingPlanView{
		ID:            p.ID,
		Name:          or(p.Metadata.PlanName, p.Title),
		Price:         p.Metadata.Price,
		BillingPeriod: p.Metadata.BillingPeriod,
		Description:   p.Metadata.Description,
		Features:      features,
		Popular:       bool(p.Metadata.IsPopular),
		CTAText:       or(p.Metadata.CTAText, DefaultCTAText),
	}
}

func ResolveTestimonial(c CaseStudy) TestimonialView {
	return TestimonialView{
		ID:          c.ID,
		ClientName:  or(c.Metadata.ClientName, c.Title),
		ClientTitle: c.Metadata.ClientTitle,
		Quote:       c.Metadata.TestimonialQuote,
		ClientPhoto: ImageURL(c.Metadata.ClientPhoto.Src(), PortraitImage),
		CompanyLogo: ImageURL(c.Metadata.CompanyLogo.Src(), CompanyLogoImage),
		Results:     c.Metadata.ResultsAchieved,
	}
}

func ResolveFAQ(f FAQItem) FAQView {
	return FAQView{
		ID:       f.ID,
		Question: or(f.Metadata.Question, f.Title),
		Answer:   f.Metadata.Answer,
		Category: or(f.Metadata.Category.Label(), DefaultFAQCategory),
	}
}

func ResolvePage(p Page) PageView {
	return PageView{
		Title:           or(p.Metadata.PageTitle, p.Title),
		Body:            p.Metadata.PageContent,
		MetaDescription: or(p.Metadata.MetaDescription, DefaultPageDescription),
		HeroImage:       ImageURL(p.Metadata.HeroImage.Src(), PageHeroImage),
	}
}

// ResolveAll maps resolve over records.
func ResolveAll[T, V any](records []T, resolve func(T) V) []V {
	out := make([]V, 0, len(records))
	for _, r := range records {
		out = append(out, resolve(r))
	}
	return out
}

// GroupIntegrations groups integrations by category, keeping categories in
// first-seen order and items in input order.
func GroupIntegrations(items []IntegrationView) []IntegrationGroup {
	var groups []IntegrationGroup
	index := make(map[string]int)
	for _, item := range items {
		category := or(item.Category, DefaultIntegrationCategory)
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, IntegrationGroup{Category: category, Icon: CategoryIcon(category)})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// CategoryIcon returns the glyph shown beside an integration category.
func CategoryIcon(category string) string {
	switch category {
	case "Communication":
		return "💬"
	case "Security":
		return "🔒"
	case "HR Systems":
		return "👥"
	case "CRM":
		return "📊"
	default:
		return "🔧"
	}
}

// FindSection returns the first section of kind, or nil.
func FindSection(sections []HomepageSection, kind string) *HomepageSection {
	for i := range sections {
		if sections[i].Metadata.Kind() == kind {
			return &sections[i]
		}
	}
	return nil
}
