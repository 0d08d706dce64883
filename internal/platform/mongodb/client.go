// Package mongodb manages the lifecycle of a MongoDB client: connect with a
// ping, hand out collections, and disconnect.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Client wraps a connected mongo.Client.
type Client struct {
	client  *mongo.Client
	timeout time.Duration
}

// Connect opens a client for uri and pings the primary so that an
// unreachable server fails here rather than on first use. A positive
// timeout bounds server selection and the ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*Client, error) {
	opts := options.Client().ApplyURI(uri)
	if timeout > 0 {
		opts.SetServerSelectionTimeout(timeout)
		opts.SetConnectTimeout(timeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("open client: %w", err)
	}

	c := &Client{client: client, timeout: timeout}
	if err := c.Ping(ctx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("ping: %w", err)
	}
	return c, nil
}

// Ping checks that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle to database.name. No round trip is made.
func (c *Client) Collection(database, name string) *mongo.Collection {
	return c.client.Database(database).Collection(name)
}

// Close disconnects the client, waiting for in-use connections to return
// to the pool.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
