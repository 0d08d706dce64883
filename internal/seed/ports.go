package seed

import (
	"context"

	"bookstore/internal/book"
)

// Connector opens sessions to a document store.
type Connector interface {
	Connect(ctx context.Context, uri string) (Session, error)
}

// Session is one open connection. Close must be called exactly once.
type Session interface {
	Collection(database, name string) Collection
	Close(ctx context.Context) error
}

// Collection is the subset of book.Repository the loader needs.
type Collection interface {
	Count(ctx context.Context, q book.Query) (int64, error)
	Drop(ctx context.Context) error
	InsertMany(ctx context.Context, books []book.Book) (int, error)
	List(ctx context.Context, q book.Query) ([]book.Book, error)
}
