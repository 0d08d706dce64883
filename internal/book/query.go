package book

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Query defines filters, projection, sorting and pagination for listing books.
// The zero value matches every document in natural order.
type Query struct {
	Title      string
	Author     string
	Genre      string
	Text       string
	InStock    *bool
	YearAfter  *int
	YearBefore *int
	Fields     []string
	Sort       string
	Desc       bool
	Limit      int
	Offset     int
}

var sortFields = map[string]string{
	"title": "title",
	"year":  "published_year",
	"price": "price",
	"pages": "pages",
}

// Filter builds the match document. All conditions are AND-ed.
func (q Query) Filter() bson.D {
	filter := bson.D{}

	if q.Title != "" {
		filter = append(filter, bson.E{Key: "title", Value: q.Title})
	}
	if q.Author != "" {
		filter = append(filter, bson.E{Key: "author", Value: q.Author})
	}
	if q.Genre != "" {
		filter = append(filter, bson.E{Key: "genre", Value: q.Genre})
	}
	if q.InStock != nil {
		filter = append(filter, bson.E{Key: "in_stock", Value: *q.InStock})
	}

	year := bson.D{}
	if q.YearAfter != nil {
		year = append(year, bson.E{Key: "$gt", Value: *q.YearAfter})
	}
	if q.YearBefore != nil {
		year = append(year, bson.E{Key: "$lt", Value: *q.YearBefore})
	}
	if len(year) > 0 {
		filter = append(filter, bson.E{Key: "published_year", Value: year})
	}

	if q.Text != "" {
		filter = append(filter, bson.E{Key: "$text", Value: bson.D{{Key: "$search", Value: q.Text}}})
	}

	return filter
}

// Projection returns the inclusion projection for Fields, or nil when all
// fields are wanted. The store identifier is always suppressed in a projection.
func (q Query) Projection() bson.D {
	if len(q.Fields) == 0 {
		return nil
	}
	proj := bson.D{}
	for _, f := range q.Fields {
		if f == "_id" {
			continue
		}
		proj = append(proj, bson.E{Key: f, Value: 1})
	}
	return append(proj, bson.E{Key: "_id", Value: 0})
}

// SortSpec returns the sort document, or nil for natural order.
func (q Query) SortSpec() (bson.D, error) {
	if q.Sort == "" {
		return nil, nil
	}
	field, ok := sortFields[q.Sort]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, q.Sort)
	}
	dir := 1
	if q.Desc {
		dir = -1
	}
	return bson.D{{Key: field, Value: dir}}, nil
}

// FindOptions translates projection, sort and pagination into driver options.
func (q Query) FindOptions() (*options.FindOptionsBuilder, error) {
	opts := options.Find()
	if proj := q.Projection(); proj != nil {
		opts.SetProjection(proj)
	}
	sort, err := q.SortSpec()
	if err != nil {
		return nil, err
	}
	if sort != nil {
		opts.SetSort(sort)
	}
	if q.Offset > 0 {
		opts.SetSkip(int64(q.Offset))
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	return opts, nil
}

// IntPtr is a helper for building optional year filters.
func IntPtr(v int) *int { return &v }

// BoolPtr is a helper for building optional flag filters.
func BoolPtr(v bool) *bool { return &v }
