package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Book, error)
	Count(ctx context.Context, q Query) (int64, error)
	InsertMany(ctx context.Context, books []Book) (int, error)
	Drop(ctx context.Context) error
	Update(ctx context.Context, title string, p Patch) error
	DeleteOne(ctx context.Context, title string) error
	DeleteMany(ctx context.Context, q Query) (int64, error)

	GenreStats(ctx context.Context) ([]GenreStat, error)
	AuthorCounts(ctx context.Context, limit int) ([]AuthorCount, error)
	DecadeCounts(ctx context.Context) ([]DecadeCount, error)
	StockSummary(ctx context.Context) ([]StockStat, error)

	EnsureIndexes(ctx context.Context) ([]string, error)
	ListIndexes(ctx context.Context) ([]IndexInfo, error)
	DropIndex(ctx context.Context, name string) error
	Explain(ctx context.Context, q Query) (Plan, error)
}
