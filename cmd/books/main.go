// Package main runs catalog queries against the books collection: finds,
// field updates, deletes and aggregate reports.
//
// Usage:
//
//	go run ./cmd/books find --genre Prayer
//	go run ./cmd/books find --after 2015
//	go run ./cmd/books find --in-stock=true --after 2010 --fields title,author,price
//	go run ./cmd/books find --sort year --desc --page 2 --page-size 5
//	go run ./cmd/books update --title "Unmerited Favor" --price 18.50
//	go run ./cmd/books delete --before 2000
//	go run ./cmd/books stats authors --top 1
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/platform/logging"
	"bookstore/internal/platform/mongodb"
)

const usage = `usage: books <command> [flags]

commands:
  find     list books matching filters
  update   set price or stock flag of one book by title
  delete   delete one book by title, or all books before a year
  stats    genres | authors | decades | stock
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	cmd, err := parseCommand(args, &cfg, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	log := logging.New(cfg.Log, stderr)

	client, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return 1
	}
	defer func() {
		if err := client.Close(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("close connection")
		}
	}()

	repo := book.NewMongoRepo(client.Collection(cfg.Mongo.Database, cfg.Mongo.Collection), cfg.Mongo.Timeout)
	svc := book.NewService(repo)

	if err := cmd.exec(ctx, svc, stdout); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			fmt.Fprintf(stdout, "%v\n", err)
			return 0
		}
		log.Error().Err(err).Str("command", cmd.name).Msg("Command failed")
		return 1
	}
	return 0
}
