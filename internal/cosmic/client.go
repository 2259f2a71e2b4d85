// Package cosmic provides a read-only REST client for the Cosmic headless CMS
// bucket that backs the site's content.
package cosmic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/config"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

// Module provides the bucket client as an fx module
var Module = fx.Module("cosmic",
	fx.Provide(NewClientFromConfig),
)

const objectsPath = "/buckets/{bucket}/objects"

// Options configures a Client.
type Options struct {
	APIURL     string
	BucketSlug string
	ReadKey    string
	WriteKey   string
	Timeout    time.Duration
}

// Client reads objects from a single bucket.
type Client struct {
	http     *resty.Client
	bucket   string
	readKey  string
	writeKey string
	log      *slog.Logger
}

// NewClient validates the credentials and creates a client. It is meant to be
// called once at startup and shared.
func NewClient(opts Options, log *slog.Logger) (*Client, error) {
	var missing []error
	if opts.BucketSlug == "" {
		missing = append(missing, errors.New("bucket slug is required"))
	}
	if opts.ReadKey == "" {
		missing = append(missing, errors.New("read key is required"))
	}
	if opts.WriteKey == "" {
		missing = append(missing, errors.New("write key is required"))
	}
	if opts.APIURL == "" {
		missing = append(missing, errors.New("api url is required"))
	}
	if err := errors.Join(missing...); err != nil {
		return nil, fmt.Errorf("cosmic: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(opts.APIURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		bucket:   opts.BucketSlug,
		readKey:  opts.ReadKey,
		writeKey: opts.WriteKey,
		log:      log.With(logger.Scope("cosmic")),
	}, nil
}

// NewClientFromConfig creates a client from application config
func NewClientFromConfig(cfg *config.Config, log *slog.Logger) (*Client, error) {
	return NewClient(Options{
		APIURL:     cfg.Cosmic.APIURL,
		BucketSlug: cfg.Cosmic.BucketSlug,
		ReadKey:    cfg.Cosmic.ReadKey,
		WriteKey:   cfg.Cosmic.WriteKey,
		Timeout:    cfg.Cosmic.Timeout,
	}, log)
}

// Find returns every object matching q.
func (c *Client) Find(ctx context.Context, q Query) (*ListResponse, error) {
	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	var out ListResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode objects response: %w", err)
	}
	return &out, nil
}

// FindOne returns the first object matching q. An empty result is reported
// as a 404 *Error, the same way the store reports a missing slug.
func (c *Client) FindOne(ctx context.Context, q Query) (json.RawMessage, error) {
	q.Limit = 1
	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	var out singleResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode object response: %w", err)
	}

	switch {
	case len(out.Object) > 0 && string(out.Object) != "null":
		return out.Object, nil
	case len(out.Objects) > 0:
		return out.Objects[0], nil
	default:
		return nil, &Error{StatusCode: http.StatusNotFound, Message: "No objects found"}
	}
}

func (c *Client) get(ctx context.Context, q Query) ([]byte, error) {
	params, err := q.params()
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	params["read_key"] = c.readKey

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("bucket", c.bucket).
		SetQueryParams(params).
		Get(objectsPath)
	if err != nil {
		return nil, &Error{
			Message: fmt.Sprintf("content store unreachable for type %s", q.Type),
			Err:     err,
		}
	}

	c.log.Debug("objects request",
		slog.String("type", q.Type),
		slog.String("slug", q.Slug),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.IsError() {
		return nil, newStatusError(resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}
