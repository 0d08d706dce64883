// Package main manages the indexes of the books collection.
//
// Usage:
//
//	go run ./cmd/indexes --command up
//	go run ./cmd/indexes --command status
//	go run ./cmd/indexes --command explain --author "T.D. Jakes"
//	go run ./cmd/indexes --command down --name TextSearchIndex
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/v2/bson"

	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/platform/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	opts, err := parseFlags(args, &cfg, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := logging.New(cfg.Log, stderr)

	repo, closeRepo, err := openRepo(ctx, cfg.Mongo)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return 1
	}
	defer closeRepo()

	if err := execute(ctx, repo, opts, stdout, log); err != nil {
		log.Error().Err(err).Str("command", opts.command).Msg("Index command failed")
		return 1
	}
	return 0
}

type indexRepo interface {
	EnsureIndexes(ctx context.Context) ([]string, error)
	ListIndexes(ctx context.Context) ([]book.IndexInfo, error)
	DropIndex(ctx context.Context, name string) error
	Explain(ctx context.Context, q book.Query) (book.Plan, error)
}

func execute(ctx context.Context, repo indexRepo, opts options, out io.Writer, log zerolog.Logger) error {
	switch opts.command {
	case "up":
		names, err := repo.EnsureIndexes(ctx)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintf(out, "index ready: %s\n", n)
		}
		log.Info().Int("count", len(names)).Msg("Indexes applied successfully")
	case "down":
		if err := repo.DropIndex(ctx, opts.name); err != nil {
			return fmt.Errorf("drop index %s: %w", opts.name, err)
		}
		log.Info().Str("index", opts.name).Msg("Index dropped successfully")
	case "status":
		infos, err := repo.ListIndexes(ctx)
		if err != nil {
			return err
		}
		for _, i := range infos {
			keys, err := bson.MarshalExtJSON(i.Keys, false, false)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-30s %s\n", i.Name, keys)
		}
	case "explain":
		plan, err := repo.Explain(ctx, opts.query)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "stages:        %v\n", plan.Stages)
		if plan.IndexName != "" {
			fmt.Fprintf(out, "index:         %s\n", plan.IndexName)
		}
		fmt.Fprintf(out, "returned:      %d\n", plan.ReturnedCount)
		fmt.Fprintf(out, "keys examined: %d\n", plan.TotalKeysExamined)
		fmt.Fprintf(out, "docs examined: %d\n", plan.TotalDocsExamined)
	}
	return nil
}
