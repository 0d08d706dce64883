package book

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotFound is returned when no book matches a title or filter.
var ErrNotFound = errors.New("book not found")

// ErrInvalidSort is returned when a query asks for an unknown sort key.
var ErrInvalidSort = errors.New("invalid sort key")

// Book represents a book document in the books collection.
// Field names are part of the wire contract for downstream queries.
type Book struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string        `bson:"title" json:"title"`
	Author        string        `bson:"author" json:"author"`
	Genre         string        `bson:"genre" json:"genre"`
	PublishedYear int           `bson:"published_year" json:"published_year"`
	Price         float64       `bson:"price" json:"price"`
	InStock       bool          `bson:"in_stock" json:"in_stock"`
	Pages         int           `bson:"pages" json:"pages"`
	Publisher     string        `bson:"publisher" json:"publisher"`
}

// Patch lists the fields an update may set. Nil fields are left untouched.
type Patch struct {
	Price   *float64
	InStock *bool
}

// Empty reports whether the patch sets nothing.
func (p Patch) Empty() bool {
	return p.Price == nil && p.InStock == nil
}

// GenreStat is one row of the average-price-by-genre aggregation.
type GenreStat struct {
	Genre        string  `bson:"_id" json:"genre"`
	AveragePrice float64 `bson:"averagePrice" json:"average_price"`
	Count        int     `bson:"count" json:"count"`
}

// AuthorCount is one row of the books-per-author aggregation.
type AuthorCount struct {
	Author    string `bson:"_id" json:"author"`
	BookCount int    `bson:"bookCount" json:"book_count"`
}

// DecadeCount is one row of the books-per-decade aggregation.
type DecadeCount struct {
	Decade int `bson:"_id" json:"decade"`
	Count  int `bson:"count" json:"count"`
}

// StockStat is one row of the in-stock analysis.
type StockStat struct {
	InStock    bool    `bson:"_id" json:"in_stock"`
	TotalValue float64 `bson:"totalValue" json:"total_value"`
	Count      int     `bson:"count" json:"count"`
}

// IndexInfo describes an index on the collection.
type IndexInfo struct {
	Name string `json:"name"`
	Keys bson.D `json:"keys"`
}

// Plan summarises an explain("executionStats") result.
type Plan struct {
	Stages            []string `json:"stages"`
	IndexName         string   `json:"index_name,omitempty"`
	ReturnedCount     int64    `json:"returned"`
	TotalKeysExamined int64    `json:"total_keys_examined"`
	TotalDocsExamined int64    `json:"total_docs_examined"`
}

// UsesIndex reports whether the winning plan scanned an index.
func (p Plan) UsesIndex() bool {
	for _, s := range p.Stages {
		if s == "IXSCAN" || s == "TEXT_MATCH" || s == "TEXT_OR" {
			return true
		}
	}
	return false
}
