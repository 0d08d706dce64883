package seed

import (
	"context"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/platform/mongodb"
)

// MongoConnector opens MongoDB sessions. Timeout bounds server selection
// and each collection call; zero leaves them to the caller's context.
type MongoConnector struct {
	Timeout time.Duration
}

func (c MongoConnector) Connect(ctx context.Context, uri string) (Session, error) {
	client, err := mongodb.Connect(ctx, uri, c.Timeout)
	if err != nil {
		return nil, err
	}
	return &mongoSession{client: client, timeout: c.Timeout}, nil
}

type mongoSession struct {
	client  *mongodb.Client
	timeout time.Duration
}

func (s *mongoSession) Collection(database, name string) Collection {
	return book.NewMongoRepo(s.client.Collection(database, name), s.timeout)
}

func (s *mongoSession) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}
