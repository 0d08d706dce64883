package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/platform/mongodb"
)

type options struct {
	command string
	name    string
	query   book.Query
}

func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("indexes", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.command, "command", "status", "Index command: up, down, status, explain")
	fs.StringVar(&opts.name, "name", book.TextIndexName, "Index name for 'down'")
	fs.StringVar(&opts.query.Author, "author", "", "Author filter for 'explain'")
	fs.StringVar(&opts.query.Title, "title", "", "Title filter for 'explain'")
	fs.StringVar(&opts.query.Genre, "genre", "", "Genre filter for 'explain'")
	fs.StringVar(&cfg.Mongo.URI, "uri", cfg.Mongo.URI, "MongoDB connection string")
	fs.StringVar(&cfg.Mongo.Database, "db", cfg.Mongo.Database, "database")
	fs.StringVar(&cfg.Mongo.Collection, "collection", cfg.Mongo.Collection, "collection")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.command {
	case "up", "down", "status", "explain":
	default:
		return options{}, fmt.Errorf("unknown command: %s. Use: up, down, status, explain", opts.command)
	}
	if opts.command == "down" && opts.name == "" {
		return options{}, fmt.Errorf("name is required for 'down' command")
	}
	return opts, nil
}

func openRepo(ctx context.Context, m config.Mongo) (*book.MongoRepo, func(), error) {
	client, err := mongodb.Connect(ctx, m.URI, m.Timeout)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Close(context.WithoutCancel(ctx)) }
	return book.NewMongoRepo(client.Collection(m.Database, m.Collection), m.Timeout), closeFn, nil
}
