package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Find returns the books matching the query.
func (s *Service) Find(ctx context.Context, q Query) ([]Book, error) {
	return s.repo.List(ctx, q)
}

// FindPage returns one page of the books matching the query.
func (s *Service) FindPage(ctx context.Context, q Query, p Page) ([]Book, error) {
	return s.repo.List(ctx, p.Apply(q))
}

// SetPrice updates the price of the book with the given title.
func (s *Service) SetPrice(ctx context.Context, title string, price float64) error {
	return s.repo.Update(ctx, title, Patch{Price: &price})
}

// SetInStock updates the stock flag of the book with the given title.
func (s *Service) SetInStock(ctx context.Context, title string, inStock bool) error {
	return s.repo.Update(ctx, title, Patch{InStock: &inStock})
}

// Remove deletes the book with the given title.
func (s *Service) Remove(ctx context.Context, title string) error {
	return s.repo.DeleteOne(ctx, title)
}

// RemoveBefore deletes every book published before year and returns how many went.
func (s *Service) RemoveBefore(ctx context.Context, year int) (int64, error) {
	return s.repo.DeleteMany(ctx, Query{YearBefore: &year})
}

// TopAuthor returns the author with the most books.
func (s *Service) TopAuthor(ctx context.Context) (AuthorCount, error) {
	counts, err := s.repo.AuthorCounts(ctx, 1)
	if err != nil {
		return AuthorCount{}, err
	}
	if len(counts) == 0 {
		return AuthorCount{}, ErrNotFound
	}
	return counts[0], nil
}

// AuthorCounts returns books per author, most prolific first.
func (s *Service) AuthorCounts(ctx context.Context, limit int) ([]AuthorCount, error) {
	return s.repo.AuthorCounts(ctx, limit)
}

// GenreStats returns average price and count per genre.
func (s *Service) GenreStats(ctx context.Context) ([]GenreStat, error) {
	return s.repo.GenreStats(ctx)
}

// DecadeCounts returns the number of books per publication decade.
func (s *Service) DecadeCounts(ctx context.Context) ([]DecadeCount, error) {
	return s.repo.DecadeCounts(ctx)
}

// StockSummary returns total value and count split by stock status.
func (s *Service) StockSummary(ctx context.Context) ([]StockStat, error) {
	return s.repo.StockSummary(ctx)
}
