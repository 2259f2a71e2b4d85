package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Object is one record of a content category. Metadata carries the
// category-specific schema; every metadata field is optional.
type Object[M any] struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	Metadata   M      `json:"metadata"`
}

type (
	Statistic       = Object[StatisticMeta]
	Article         = Object[ArticleMeta]
	CaseStudy       = Object[CaseStudyMeta]
	HomepageSection = Object[HomepageSectionMeta]
	Solution        = Object[SolutionMeta]
	Page            = Object[PageMeta]
	FAQItem         = Object[FAQItemMeta]
	Feature         = Object[FeatureMeta]
	Integration     = Object[IntegrationMeta]
	PricingPlan     = Object[PricingPlanMeta]
)

type StatisticMeta struct {
	Value        string `json:"statistic_value"`
	Description  string `json:"statistic_description"`
	Icon         string `json:"icon"`
	DisplayOrder Order  `json:"display_order"`
}

type ArticleMeta struct {
	ArticleTitle  string     `json:"article_title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage *ImageRef  `json:"featured_image"`
	Author        *Reference `json:"author"`
	Category      *Option    `json:"category"`
}

type CaseStudyMeta struct {
	ClientName       string    `json:"client_name"`
	ClientTitle      string    `json:"client_title"`
	TestimonialQuote string    `json:"testimonial_quote"`
	ClientPhoto      *ImageRef `json:"client_photo"`
	CompanyLogo      *ImageRef `json:"company_logo"`
	ResultsAchieved  string    `json:"results_achieved"`
}

// Section kinds carried in HomepageSectionMeta.SectionType.
const (
	SectionHero         = "hero"
	SectionFeatures     = "features"
	SectionStats        = "stats"
	SectionTestimonials = "testimonials"
	SectionCTA          = "cta"
)

type HomepageSectionMeta struct {
	SectionName     string    `json:"section_name"`
	SectionType     *Option   `json:"section_type"`
	Headline        string    `json:"headline"`
	Subheadline     string    `json:"subheadline"`
	Content         string    `json:"content"`
	CTAText         string    `json:"cta_text"`
	CTALink         string    `json:"cta_link"`
	BackgroundImage *ImageRef `json:"background_image"`
	DisplayOrder    Order     `json:"display_order"`
}

// Kind returns the section kind key, or "" when unset.
func (m HomepageSectionMeta) Kind() string {
	if m.SectionType == nil {
		return ""
	}
	return strings.ToLower(m.SectionType.Key)
}

type SolutionMeta struct {
	SolutionName     string    `json:"solution_name"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `json:"full_description"`
	Icon             *ImageRef `json:"icon"`
	Category         *Option   `json:"category"`
}

type PageMeta struct {
	PageTitle       string    `json:"page_title"`
	PageContent     string    `json:"page_content"`
	MetaDescription string    `json:"meta_description"`
	HeroImage       *ImageRef `json:"hero_image"`
}

type FAQItemMeta struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category *Option `json:"category"`
}

type FeatureMeta struct {
	FeatureName string    `json:"feature_name"`
	Description string    `json:"description"`
	Icon        *ImageRef `json:"icon"`
	Benefit     string    `json:"benefit"`
}

type IntegrationMeta struct {
	IntegrationName string    `json:"integration_name"`
	Description     string    `json:"description"`
	Logo            *ImageRef `json:"logo"`
	Category        *Option   `json:"category"`
}

type PricingPlanMeta struct {
	PlanName      string     `json:"plan_name"`
	Price         string     `json:"price"`
	BillingPeriod string     `json:"billing_period"`
	Description   string     `json:"description"`
	Features      StringList `json:"features"`
	IsPopular     Flag       `json:"is_popular"`
	CTAText       string     `json:"cta_text"`
}

func isNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

// Order is a display position. The store sends it as a number, but editors
// can also leave it as numeric text or blank.
type Order struct {
	value int
	set   bool
}

// Value returns the position and whether one was given.
func (o Order) Value() (int, bool) {
	return o.value, o.set
}

func (o *Order) UnmarshalJSON(data []byte) error {
	*o = Order{}
	if isNull(data) {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		return o.assign(n)
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("display order: expected number or string, got %s", data)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("display order: %q is not a number", s)
	}
	return o.assign(f)
}

func (o *Order) assign(f float64) error {
	r := math.Round(f)
	if math.IsNaN(r) || r < math.MinInt32 || r > math.MaxInt32 {
		return fmt.Errorf("display order: %g is out of range", f)
	}
	*o = Order{value: int(r), set: true}
	return nil
}

// StringList accepts a JSON array of strings or a newline separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	if isNull(data) {
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("string list: expected array or string, got %s", data)
	}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			*l = append(*l, line)
		}
	}
	return nil
}

// Flag is a boolean that also accepts "true"/"false" text.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = false
	if isNull(data) {
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flag: expected bool or string, got %s", data)
	}
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("flag: %q is not a boolean", s)
	}
	*f = Flag(b)
	return nil
}

// ImageRef is a media field. A bare string is taken as the URL.
type ImageRef struct {
	URL      string `json:"url"`
	ImgixURL string `json:"imgix_url"`
}

// Src returns the best URL for rendering, preferring the imgix one.
func (i *ImageRef) Src() string {
	if i == nil {
		return ""
	}
	if i.ImgixURL != "" {
		return i.ImgixURL
	}
	return i.URL
}

func (i *ImageRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = ImageRef{URL: s}
		return nil
	}
	type plain ImageRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("image: %w", err)
	}
	*i = ImageRef(p)
	return nil
}

// Option is a select-dropdown value. A bare string sets both key and value.
type Option struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Label returns the display value, falling back to the key.
func (o *Option) Label() string {
	if o == nil {
		return ""
	}
	if o.Value != "" {
		return o.Value
	}
	return o.Key
}

func (o *Option) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = Option{Key: s, Value: s}
		return nil
	}
	type plain Option
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("option: %w", err)
	}
	if p.Key == "" {
		p.Key = p.Value
	}
	*o = Option(p)
	return nil
}

// Reference is an object-relationship field. With depth 1 the store expands
// it into the related object; otherwise only the id is sent.
type Reference struct {
	ID       string          `json:"id"`
	Slug     string          `json:"slug"`
	Title    string          `json:"title"`
	Type     string          `json:"type"`
	Metadata json.RawMessage `json:"metadata"`
}

// Expanded reports whether the related object was resolved.
func (r *Reference) Expanded() bool {
	return r != nil && r.Title != ""
}

func (r *Reference) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = Reference{ID: id}
		return nil
	}
	type plain Reference
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	*r = Reference(p)
	return nil
}
