// Package main seeds the books collection with the fixed sample dataset.
//
// The target collection is dropped first when it already holds documents,
// so every run leaves exactly the same ten books behind.
//
// Usage:
//
//	MONGO_URI=mongodb://localhost:27017 go run ./cmd/seed
//	go run ./cmd/seed --db plp_bookstore --collection books --timeout 10s
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"bookstore/internal/config"
	"bookstore/internal/fixture"
	"bookstore/internal/platform/logging"
	"bookstore/internal/seed"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	fs := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	fs.StringVar(&cfg.Mongo.URI, "uri", cfg.Mongo.URI, "MongoDB connection string")
	fs.StringVar(&cfg.Mongo.Database, "db", cfg.Mongo.Database, "target database")
	fs.StringVar(&cfg.Mongo.Collection, "collection", cfg.Mongo.Collection, "target collection (dropped if not empty)")
	fs.DurationVar(&cfg.Mongo.Timeout, "timeout", cfg.Mongo.Timeout, "bound on the run, 0 for none")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	log := logging.New(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := seed.NewLoader(seed.MongoConnector{Timeout: cfg.Mongo.Timeout}, log)
	res, err := loader.Run(ctx, seed.Config{
		URI:        cfg.Mongo.URI,
		Database:   cfg.Mongo.Database,
		Collection: cfg.Mongo.Collection,
		Records:    fixture.Books(),
		Timeout:    cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Error().Err(err).Str("run_id", res.RunID).Msg("seed failed")
		return 1
	}

	if err := seed.WriteReport(os.Stdout, res); err != nil {
		log.Error().Err(err).Msg("write report")
		return 1
	}
	return 0
}
