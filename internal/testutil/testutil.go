// Package testutil provides helpers for tests that talk to a real MongoDB.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"bookstore/internal/book"
	"bookstore/internal/platform/mongodb"
)

// DefaultTestURI is used when MONGO_TEST_URI is not set.
const DefaultTestURI = "mongodb://localhost:27017"

// TestBook is a sample record that is not part of the seed dataset.
var TestBook = book.Book{
	Title:         "Test Book Title",
	Author:        "Test Author",
	Genre:         "Fiction",
	PublishedYear: 2001,
	Price:         9.5,
	InStock:       true,
	Pages:         120,
	Publisher:     "Test Publisher",
}

// TestURI returns the MongoDB address for integration tests.
func TestURI() string {
	if v := os.Getenv("MONGO_TEST_URI"); v != "" {
		return v
	}
	return DefaultTestURI
}

// Client connects to the test server or skips the test when it is not
// reachable. The client is closed when the test ends.
func Client(t *testing.T) *mongodb.Client {
	t.Helper()
	ctx := context.Background()

	c, err := mongodb.Connect(ctx, TestURI(), 2*time.Second)
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

// DatabaseName returns a database name unique to this test.
func DatabaseName(t *testing.T) string {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_", ".", "_", "$", "_").Replace(t.Name())
	if len(name) > 30 {
		name = name[:30]
	}
	return fmt.Sprintf("test_%s_%s", name, uuid.NewString()[:8])
}

// Collection returns a collection in a fresh database that is dropped
// when the test ends.
func Collection(t *testing.T, name string) *mongo.Collection {
	t.Helper()
	coll := Client(t).Collection(DatabaseName(t), name)
	t.Cleanup(func() { _ = coll.Database().Drop(context.Background()) })
	return coll
}

// MustInsert writes books directly, bypassing the code under test.
func MustInsert(t *testing.T, coll *mongo.Collection, books ...book.Book) {
	t.Helper()
	if len(books) == 0 {
		return
	}
	if _, err := coll.InsertMany(context.Background(), books); err != nil {
		t.Fatalf("insert fixtures: %v", err)
	}
}
