package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/v2/bson"

	"bookstore/internal/book"
	"bookstore/internal/config"
)

type command struct {
	name string
	exec func(ctx context.Context, svc *book.Service, out io.Writer) error
}

func parseCommand(args []string, cfg *config.Config, stderr io.Writer) (command, error) {
	name, rest := args[0], args[1:]

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Mongo.URI, "uri", cfg.Mongo.URI, "MongoDB connection string")
	fs.StringVar(&cfg.Mongo.Database, "db", cfg.Mongo.Database, "database")
	fs.StringVar(&cfg.Mongo.Collection, "collection", cfg.Mongo.Collection, "collection")

	switch name {
	case "find":
		return parseFind(fs, rest)
	case "update":
		return parseUpdate(fs, rest)
	case "delete":
		return parseDelete(fs, rest)
	case "stats":
		return parseStats(fs, rest)
	}
	return command{}, fmt.Errorf("unknown command %q", name)
}

func parseFind(fs *pflag.FlagSet, args []string) (command, error) {
	var (
		q          book.Query
		inStock    bool
		after      int
		before     int
		page       book.Page
		fields     []string
		paginating bool
	)
	fs.StringVar(&q.Title, "title", "", "exact title")
	fs.StringVar(&q.Author, "author", "", "exact author")
	fs.StringVar(&q.Genre, "genre", "", "exact genre")
	fs.StringVar(&q.Text, "text", "", "full-text search over title and genre")
	fs.BoolVar(&inStock, "in-stock", false, "filter on stock flag")
	fs.IntVar(&after, "after", 0, "published after year")
	fs.IntVar(&before, "before", 0, "published before year")
	fs.StringSliceVar(&fields, "fields", nil, "fields to include, _id is hidden")
	fs.StringVar(&q.Sort, "sort", "", "title, year, price or pages")
	fs.BoolVar(&q.Desc, "desc", false, "sort descending")
	fs.IntVar(&q.Limit, "limit", 0, "maximum number of books")
	fs.IntVar(&page.Number, "page", 0, "page number, from 1")
	fs.IntVar(&page.Size, "page-size", book.DefaultPageSize, "books per page")
	if err := fs.Parse(args); err != nil {
		return command{}, err
	}

	if fs.Changed("in-stock") {
		q.InStock = book.BoolPtr(inStock)
	}
	if fs.Changed("after") {
		q.YearAfter = book.IntPtr(after)
	}
	if fs.Changed("before") {
		q.YearBefore = book.IntPtr(before)
	}
	q.Fields = fields
	paginating = fs.Changed("page")
	if _, err := q.SortSpec(); err != nil {
		return command{}, err
	}

	return command{name: "find", exec: func(ctx context.Context, svc *book.Service, out io.Writer) error {
		var (
			books []book.Book
			err   error
		)
		if paginating {
			books, err = svc.FindPage(ctx, q, page)
		} else {
			books, err = svc.Find(ctx, q)
		}
		if err != nil {
			return err
		}
		if paginating {
			fmt.Fprintf(out, "page %d (%d books)\n", page.Normalize().Number, len(books))
		}
		return writeBooks(out, books, q.Fields)
	}}, nil
}

func parseUpdate(fs *pflag.FlagSet, args []string) (command, error) {
	var (
		title   string
		price   float64
		inStock bool
	)
	fs.StringVar(&title, "title", "", "title of the book to update")
	fs.Float64Var(&price, "price", 0, "new price")
	fs.BoolVar(&inStock, "in-stock", false, "new stock flag")
	if err := fs.Parse(args); err != nil {
		return command{}, err
	}
	if title == "" {
		return command{}, fmt.Errorf("update: --title is required")
	}
	setPrice, setStock := fs.Changed("price"), fs.Changed("in-stock")
	if !setPrice && !setStock {
		return command{}, fmt.Errorf("update: one of --price or --in-stock is required")
	}

	return command{name: "update", exec: func(ctx context.Context, svc *book.Service, out io.Writer) error {
		if setPrice {
			if err := svc.SetPrice(ctx, title, price); err != nil {
				return fmt.Errorf("%q: %w", title, err)
			}
		}
		if setStock {
			if err := svc.SetInStock(ctx, title, inStock); err != nil {
				return fmt.Errorf("%q: %w", title, err)
			}
		}
		fmt.Fprintf(out, "updated %q\n", title)
		return nil
	}}, nil
}

func parseDelete(fs *pflag.FlagSet, args []string) (command, error) {
	var (
		title  string
		before int
	)
	fs.StringVar(&title, "title", "", "title of the book to delete")
	fs.IntVar(&before, "before", 0, "delete every book published before this year")
	if err := fs.Parse(args); err != nil {
		return command{}, err
	}
	byYear := fs.Changed("before")
	if (title == "") == !byYear {
		return command{}, fmt.Errorf("delete: exactly one of --title or --before is required")
	}

	return command{name: "delete", exec: func(ctx context.Context, svc *book.Service, out io.Writer) error {
		if byYear {
			n, err := svc.RemoveBefore(ctx, before)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "deleted %d books published before %d\n", n, before)
			return nil
		}
		if err := svc.Remove(ctx, title); err != nil {
			return fmt.Errorf("%q: %w", title, err)
		}
		fmt.Fprintf(out, "deleted %q\n", title)
		return nil
	}}, nil
}

func parseStats(fs *pflag.FlagSet, args []string) (command, error) {
	var top int
	fs.IntVar(&top, "top", 0, "only the top n authors")
	if err := fs.Parse(args); err != nil {
		return command{}, err
	}
	if fs.NArg() != 1 {
		return command{}, fmt.Errorf("stats: want one of genres, authors, decades, stock")
	}
	report := fs.Arg(0)

	var exec func(ctx context.Context, svc *book.Service, out io.Writer) error
	switch report {
	case "genres":
		exec = func(ctx context.Context, svc *book.Service, out io.Writer) error {
			stats, err := svc.GenreStats(ctx)
			if err != nil {
				return err
			}
			for _, s := range stats {
				fmt.Fprintf(out, "%-25s avg %6.2f  books %d\n", s.Genre, s.AveragePrice, s.Count)
			}
			return nil
		}
	case "authors":
		exec = func(ctx context.Context, svc *book.Service, out io.Writer) error {
			counts, err := svc.AuthorCounts(ctx, top)
			if err != nil {
				return err
			}
			for _, c := range counts {
				fmt.Fprintf(out, "%-25s %d\n", c.Author, c.BookCount)
			}
			return nil
		}
	case "decades":
		exec = func(ctx context.Context, svc *book.Service, out io.Writer) error {
			counts, err := svc.DecadeCounts(ctx)
			if err != nil {
				return err
			}
			for _, c := range counts {
				fmt.Fprintf(out, "%ds %d\n", c.Decade, c.Count)
			}
			return nil
		}
	case "stock":
		exec = func(ctx context.Context, svc *book.Service, out io.Writer) error {
			stats, err := svc.StockSummary(ctx)
			if err != nil {
				return err
			}
			for _, s := range stats {
				label := "out of stock"
				if s.InStock {
					label = "in stock"
				}
				fmt.Fprintf(out, "%-12s value %7.2f  books %d\n", label, s.TotalValue, s.Count)
			}
			return nil
		}
	default:
		return command{}, fmt.Errorf("stats: unknown report %q", report)
	}
	return command{name: "stats " + report, exec: exec}, nil
}

// writeBooks prints one relaxed Extended JSON document per line, the way
// the mongo shell shows query results. With fields set only those keys
// are printed.
func writeBooks(out io.Writer, books []book.Book, fields []string) error {
	for _, b := range books {
		var doc any = b
		if len(fields) > 0 {
			d, err := project(b, fields)
			if err != nil {
				return err
			}
			doc = d
		}
		line, err := bson.MarshalExtJSON(doc, false, false)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, string(line)); err != nil {
			return err
		}
	}
	return nil
}

func project(b book.Book, fields []string) (bson.D, error) {
	raw, err := bson.Marshal(b)
	if err != nil {
		return nil, err
	}
	var full bson.D
	if err := bson.Unmarshal(raw, &full); err != nil {
		return nil, err
	}
	d := bson.D{}
	for _, e := range full {
		if slices.Contains(fields, e.Key) {
			d = append(d, e)
		}
	}
	return d, nil
}
