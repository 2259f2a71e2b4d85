// Package content is the typed access layer over the content store: one
// retrieval operation per category, per-category defaults, and image helpers.
package content

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/cosmic"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/tracing"
)

var Module = fx.Module("content",
	fx.Provide(newRepositoryFromClient),
)

// ObjectStore is the subset of the store client the repository needs.
type ObjectStore interface {
	Find(ctx context.Context, q cosmic.Query) (*cosmic.ListResponse, error)
	FindOne(ctx context.Context, q cosmic.Query) (json.RawMessage, error)
}

// FetchError reports a failed fetch for one category. The message never
// includes the cause; use errors.Unwrap to inspect it.
type FetchError struct {
	Category string
	Err      error
}

func (e *FetchError) Error() string {
	return "failed to fetch " + e.Category
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type category struct {
	// typ is the store's object type slug
	typ string
	// label names the category in errors
	label string
	// sort is the store sort expression, empty for store order
	sort string
}

const displayOrderSort = "metadata.display_order"

var (
	catStatistics       = category{typ: "statistics", label: "statistics", sort: displayOrderSort}
	catArticles         = category{typ: "articles", label: "articles"}
	catArticle          = category{typ: "articles", label: "article"}
	catCaseStudies      = category{typ: "case-studies", label: "case studies"}
	catHomepageSections = category{typ: "homepage-sections", label: "homepage sections", sort: displayOrderSort}
	catSolutions        = category{typ: "solutions", label: "solutions"}
	catPage             = category{typ: "pages", label: "page"}
	catFAQItems         = category{typ: "faq-items", label: "FAQ items"}
	catFeatures         = category{typ: "features", label: "features"}
	catIntegrations     = category{typ: "integrations", label: "integrations"}
	catPricingPlans     = category{typ: "pricing-plans", label: "pricing plans"}
)

// Repository fetches typed content from the store.
type Repository struct {
	store ObjectStore
	log   *slog.Logger
}

func NewRepository(store ObjectStore, log *slog.Logger) *Repository {
	return &Repository{
		store: store,
		log:   log.With(logger.Scope("content")),
	}
}

func newRepositoryFromClient(client *cosmic.Client, log *slog.Logger) *Repository {
	return NewRepository(client, log)
}

// GetStatistics returns statistics in ascending display order.
func (r *Repository) GetStatistics(ctx context.Context) ([]Statistic, error) {
	return listObjects(ctx, r, catStatistics, func(m StatisticMeta) Order { return m.DisplayOrder })
}

func (r *Repository) GetArticles(ctx context.Context) ([]Article, error) {
	return listObjects[ArticleMeta](ctx, r, catArticles, nil)
}

// GetArticle returns the article with slug, or nil when there is none.
func (r *Repository) GetArticle(ctx context.Context, slug string) (*Article, error) {
	return findObject[ArticleMeta](ctx, r, catArticle, slug)
}

func (r *Repository) GetCaseStudies(ctx context.Context) ([]CaseStudy, error) {
	return listObjects[CaseStudyMeta](ctx, r, catCaseStudies, nil)
}

// GetHomepageSections returns homepage sections in ascending display order.
func (r *Repository) GetHomepageSections(ctx context.Context) ([]HomepageSection, error) {
	return listObjects(ctx, r, catHomepageSections, func(m HomepageSectionMeta) Order { return m.DisplayOrder })
}

func (r *Repository) GetSolutions(ctx context.Context) ([]Solution, error) {
	return listObjects[SolutionMeta](ctx, r, catSolutions, nil)
}

// GetPage returns the page with slug, or nil when there is none.
func (r *Repository) GetPage(ctx context.Context, slug string) (*Page, error) {
	return findObject[PageMeta](ctx, r, catPage, slug)
}

func (r *Repository) GetFAQItems(ctx context.Context) ([]FAQItem, error) {
	return listObjects[FAQItemMeta](ctx, r, catFAQItems, nil)
}

func (r *Repository) GetFeatures(ctx context.Context) ([]Feature, error) {
	return listObjects[FeatureMeta](ctx, r, catFeatures, nil)
}

func (r *Repository) GetIntegrations(ctx context.Context) ([]Integration, error) {
	return listObjects[IntegrationMeta](ctx, r, catIntegrations, nil)
}

func (r *Repository) GetPricingPlans(ctx context.Context) ([]PricingPlan, error) {
	return listObjects[PricingPlanMeta](ctx, r, catPricingPlans, nil)
}

// listObjects fetches every record of cat. A 404 from the store means the
// category is empty and yields an empty slice. When order is non-nil the
// result is stable-sorted by it, records without a position last.
func listObjects[M any](ctx context.Context, r *Repository, cat category, order func(M) Order) ([]Object[M], error) {
	ctx, span := tracing.Start(ctx, "content.list",
		attribute.String("content.category", cat.typ),
	)
	defer span.End()

	start := time.Now()
	resp, err := r.store.Find(ctx, cosmic.Query{
		Type:  cat.typ,
		Props: cosmic.DefaultProps,
		Sort:  cat.sort,
		Depth: 1,
	})
	if err != nil {
		if cosmic.IsNotFound(err) {
			observeFetch(cat.typ, outcomeEmpty, start)
			return []Object[M]{}, nil
		}
		return nil, r.fail(span, cat, start, err)
	}

	items := make([]Object[M], 0, len(resp.Objects))
	for i, raw := range resp.Objects {
		var obj Object[M]
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, r.fail(span, cat, start, fmt.Errorf("decode %s object %d: %w", cat.typ, i, err))
		}
		items = append(items, obj)
	}

	if order != nil {
		sortByOrder(items, order)
	}

	outcome := outcomeOK
	if len(items) == 0 {
		outcome = outcomeEmpty
	}
	observeFetch(cat.typ, outcome, start)
	span.SetAttributes(attribute.Int("content.count", len(items)))
	return items, nil
}

// findObject fetches the record of cat with slug. A missing record is not an
// error and yields nil.
func findObject[M any](ctx context.Context, r *Repository, cat category, slug string) (*Object[M], error) {
	ctx, span := tracing.Start(ctx, "content.find",
		attribute.String("content.category", cat.typ),
		attribute.String("content.slug", slug),
	)
	defer span.End()

	start := time.Now()
	raw, err := r.store.FindOne(ctx, cosmic.Query{
		Type:  cat.typ,
		Slug:  slug,
		Props: cosmic.DefaultProps,
		Depth: 1,
	})
	if err != nil {
		if cosmic.IsNotFound(err) {
			observeFetch(cat.typ, outcomeEmpty, start)
			return nil, nil
		}
		return nil, r.fail(span, cat, start, err)
	}

	var obj Object[M]
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, r.fail(span, cat, start, fmt.Errorf("decode %s %q: %w", cat.typ, slug, err))
	}

	observeFetch(cat.typ, outcomeOK, start)
	return &obj, nil
}

func (r *Repository) fail(span trace.Span, cat category, start time.Time, err error) error {
	observeFetch(cat.typ, outcomeError, start)
	tracing.Fail(span, err)
	r.log.Error("content fetch failed",
		slog.String("category", cat.typ),
		logger.Error(err),
	)
	return &FetchError{Category: cat.label, Err: err}
}

func sortByOrder[M any](items []Object[M], order func(M) Order) {
	slices.SortStableFunc(items, func(a, b Object[M]) int {
		av, aok := order(a.Metadata).Value()
		bv, bok := order(b.Metadata).Value()
		switch {
		case aok && bok:
			return cmp.Compare(av, bv)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
}
