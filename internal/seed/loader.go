package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bookstore/internal/book"
)

// Result reports what a run did.
type Result struct {
	RunID         string
	Dropped       int64
	InsertedCount int
	// Books holds the collection as read back, in the store's natural order.
	Books []book.Book
	// Reached is the last stage completed before the connection was closed.
	Reached State
}

// Loader seeds a collection from a fixed list of records.
type Loader struct {
	conn Connector
	log  zerolog.Logger
}

// NewLoader returns a loader that opens its connection through conn.
func NewLoader(conn Connector, log zerolog.Logger) *Loader {
	return &Loader{conn: conn, log: log}
}

// Run performs one seeding run. The collection is dropped first when it is
// not empty. The returned error wraps ErrConnect, ErrReset, ErrInsert or
// ErrReadBack for the failing stage, joined with ErrClose if closing the
// connection also failed. The connection is closed on every path.
func (l *Loader) Run(ctx context.Context, cfg Config) (res Result, err error) {
	if err := cfg.Validate(); err != nil {
		return Result{Reached: Idle}, err
	}

	res = Result{RunID: uuid.NewString(), Reached: Idle}
	log := l.log.With().
		Str("run_id", res.RunID).
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Logger()

	fail := func(op string, stage, cause error) error {
		err := fmt.Errorf("%w: %w", stage, cause)
		log.Error().Err(cause).Str("op", op).Stringer("reached", res.Reached).Msgf("%s failed", op)
		return err
	}

	runCtx, cancel := withTimeout(ctx, cfg.Timeout)
	defer cancel()

	sess, err := l.conn.Connect(runCtx, cfg.URI)
	if err != nil {
		return res, fail("connect", ErrConnect, err)
	}
	res.Reached = Connected
	log.Info().Msg("connected")

	defer func() {
		closeCtx, cancel := withTimeout(context.WithoutCancel(ctx), cfg.Timeout)
		defer cancel()
		if cerr := sess.Close(closeCtx); cerr != nil {
			err = errors.Join(err, fail("close", ErrClose, cerr))
			return
		}
		log.Info().Stringer("from", res.Reached).Stringer("to", Closed).Msg("connection closed")
	}()

	coll := sess.Collection(cfg.Database, cfg.Collection)

	existing, err := coll.Count(runCtx, book.Query{})
	if err != nil {
		return res, fail("count", ErrReset, err)
	}
	if existing > 0 {
		log.Warn().Int64("documents", existing).Msg("collection is not empty, dropping it")
		if err := coll.Drop(runCtx); err != nil {
			return res, fail("drop", ErrReset, err)
		}
		res.Dropped = existing
		log.Info().Msg("collection dropped")
	}
	res.Reached = CollectionReset

	inserted, err := coll.InsertMany(runCtx, cfg.Records)
	if err != nil {
		return res, fail("insert", ErrInsert, err)
	}
	res.InsertedCount = inserted
	res.Reached = Inserted
	log.Info().Int("inserted", inserted).Msg("records inserted")

	books, err := coll.List(runCtx, book.Query{})
	if err != nil {
		return res, fail("read back", ErrReadBack, err)
	}
	if len(books) != inserted {
		log.Warn().Int("inserted", inserted).Int("read_back", len(books)).Msg("read back count differs from inserted count")
	}
	res.Books = books
	res.Reached = Reported

	return res, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
