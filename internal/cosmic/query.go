package cosmic

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DefaultProps is the field projection used for list queries.
var DefaultProps = []string{"id", "title", "slug", "type", "metadata", "created_at", "modified_at"}

// Query describes one objects request against the bucket.
type Query struct {
	// Type is the object type slug (e.g. "statistics")
	Type string
	// Slug filters to a single object
	Slug string
	// Props is the field projection; empty means all fields
	Props []string
	// Sort is a sort expression such as "metadata.display_order"
	Sort string
	// Depth controls reference expansion
	Depth int
	// Limit caps the number of objects returned; zero means store default
	Limit int
}

// params renders the query as URL parameters. The read key is added by the client.
func (q Query) params() (map[string]string, error) {
	filter := map[string]string{"type": q.Type}
	if q.Slug != "" {
		filter["slug"] = q.Slug
	}
	encoded, err := json.Marshal(filter)
	if err != nil {
		return nil, err
	}

	p := map[string]string{
		"query": string(encoded),
		"depth": strconv.Itoa(q.Depth),
	}
	if len(q.Props) > 0 {
		p["props"] = strings.Join(q.Props, ",")
	}
	if q.Sort != "" {
		p["sort"] = q.Sort
	}
	if q.Limit > 0 {
		p["limit"] = strconv.Itoa(q.Limit)
	}
	return p, nil
}

// ListResponse is the objects envelope. Objects stay raw so callers can decode
// them into their own typed records.
type ListResponse struct {
	Objects []json.RawMessage `json:"objects"`
	Total   int               `json:"total"`
	Limit   int               `json:"limit"`
	Skip    int               `json:"skip"`
}

type singleResponse struct {
	Object  json.RawMessage   `json:"object"`
	Objects []json.RawMessage `json:"objects"`
}
