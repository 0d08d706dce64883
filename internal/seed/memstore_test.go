package seed

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"bookstore/internal/book"
)

// memStore is an in-memory document store for loader tests. Collections
// are keyed by "database.collection".
type memStore struct {
	mu          sync.Mutex
	colls       map[string]*memCollection
	connects    int
	closes      int
	connectErr  error
	closeErr    error
	reverseRead bool
}

func newMemStore() *memStore {
	return &memStore{colls: map[string]*memCollection{}}
}

func (s *memStore) Connect(ctx context.Context, uri string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connectErr != nil {
		return nil, s.connectErr
	}
	s.connects++
	return &memSession{store: s}, nil
}

func (s *memStore) collection(database, name string) *memCollection {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := database + "." + name
	c, ok := s.colls[key]
	if !ok {
		c = &memCollection{store: s}
		s.colls[key] = c
	}
	return c
}

// preload puts documents into a collection without going through the loader.
func (s *memStore) preload(database, name string, books ...book.Book) {
	c := s.collection(database, name)
	for _, b := range books {
		b.ID = bson.NewObjectID()
		c.docs = append(c.docs, b)
	}
}

type memSession struct {
	store *memStore
}

func (s *memSession) Collection(database, name string) Collection {
	return s.store.collection(database, name)
}

func (s *memSession) Close(ctx context.Context) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.closes++
	return s.store.closeErr
}

var errMalformed = errors.New("document is missing a title")

type memCollection struct {
	store   *memStore
	docs    []book.Book
	drops   int
	dropErr error
	listErr error
}

func (c *memCollection) Count(ctx context.Context, q book.Query) (int64, error) {
	var n int64
	for _, b := range c.docs {
		if matches(b, q) {
			n++
		}
	}
	return n, nil
}

func (c *memCollection) Drop(ctx context.Context) error {
	if c.dropErr != nil {
		return c.dropErr
	}
	c.drops++
	c.docs = nil
	return nil
}

// InsertMany behaves like an ordered insert: documents before the first
// malformed one are kept.
func (c *memCollection) InsertMany(ctx context.Context, books []book.Book) (int, error) {
	for i, b := range books {
		if b.Title == "" {
			return i, errMalformed
		}
		b.ID = bson.NewObjectID()
		c.docs = append(c.docs, b)
	}
	return len(books), nil
}

func (c *memCollection) List(ctx context.Context, q book.Query) ([]book.Book, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	out := []book.Book{}
	for _, b := range c.docs {
		if matches(b, q) {
			out = append(out, b)
		}
	}
	if c.store.reverseRead {
		slices.Reverse(out)
	}
	return out, nil
}

func matches(b book.Book, q book.Query) bool {
	switch {
	case q.Title != "" && b.Title != q.Title:
		return false
	case q.Author != "" && b.Author != q.Author:
		return false
	case q.Genre != "" && b.Genre != q.Genre:
		return false
	case q.InStock != nil && b.InStock != *q.InStock:
		return false
	case q.YearAfter != nil && b.PublishedYear <= *q.YearAfter:
		return false
	case q.YearBefore != nil && b.PublishedYear >= *q.YearBefore:
		return false
	}
	return true
}
