package book

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoRepo returns a repository over coll. A zero timeout leaves each
// call bounded only by the caller's context.
func NewMongoRepo(coll *mongo.Collection, timeout time.Duration) *MongoRepo {
	return &MongoRepo{coll: coll, timeout: timeout}
}

func (r *MongoRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *MongoRepo) List(ctx context.Context, q Query) ([]Book, error) {
	opts, err := q.FindOptions()
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	cur, err := r.coll.Find(timeoutCtx, q.Filter(), opts)
	if err != nil {
		return nil, err
	}

	out := []Book{}
	if err := cur.All(timeoutCtx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) Count(ctx context.Context, q Query) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.coll.CountDocuments(timeoutCtx, q.Filter())
}

// InsertMany writes books as one ordered batch and returns how many
// identifiers the store assigned.
func (r *MongoRepo) InsertMany(ctx context.Context, books []Book) (int, error) {
	if len(books) == 0 {
		return 0, nil
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.coll.InsertMany(timeoutCtx, books, options.InsertMany().SetOrdered(true))
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// Drop removes the whole collection, including its indexes.
func (r *MongoRepo) Drop(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.coll.Drop(timeoutCtx)
}

func (r *MongoRepo) Update(ctx context.Context, title string, p Patch) error {
	if p.Empty() {
		return fmt.Errorf("update %q: nothing to set", title)
	}

	set := bson.D{}
	if p.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *p.Price})
	}
	if p.InStock != nil {
		set = append(set, bson.E{Key: "in_stock", Value: *p.InStock})
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.coll.UpdateOne(timeoutCtx,
		bson.D{{Key: "title", Value: title}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) DeleteOne(ctx context.Context, title string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.coll.DeleteOne(timeoutCtx, bson.D{{Key: "title", Value: title}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) DeleteMany(ctx context.Context, q Query) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.coll.DeleteMany(timeoutCtx, q.Filter())
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoRepo) GenreStats(ctx context.Context) ([]GenreStat, error) {
	out := []GenreStat{}
	if err := r.aggregate(ctx, GenreStatsPipeline(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) AuthorCounts(ctx context.Context, limit int) ([]AuthorCount, error) {
	out := []AuthorCount{}
	if err := r.aggregate(ctx, AuthorCountsPipeline(limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) DecadeCounts(ctx context.Context) ([]DecadeCount, error) {
	out := []DecadeCount{}
	if err := r.aggregate(ctx, DecadeCountsPipeline(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) StockSummary(ctx context.Context) ([]StockStat, error) {
	out := []StockStat{}
	if err := r.aggregate(ctx, StockSummaryPipeline(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) aggregate(ctx context.Context, p mongo.Pipeline, out any) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	cur, err := r.coll.Aggregate(timeoutCtx, p)
	if err != nil {
		return err
	}
	return cur.All(timeoutCtx, out)
}

// EnsureIndexes creates the catalog indexes. Existing identical indexes
// are left in place by the server.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) ([]string, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.coll.Indexes().CreateMany(timeoutCtx, IndexModels())
}

func (r *MongoRepo) ListIndexes(ctx context.Context) ([]IndexInfo, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	specs, err := r.coll.Indexes().ListSpecifications(timeoutCtx)
	if err != nil {
		return nil, err
	}

	out := make([]IndexInfo, 0, len(specs))
	for _, s := range specs {
		var keys bson.D
		if err := bson.Unmarshal(s.KeysDocument, &keys); err != nil {
			return nil, fmt.Errorf("decode keys of index %s: %w", s.Name, err)
		}
		out = append(out, IndexInfo{Name: s.Name, Keys: keys})
	}
	return out, nil
}

func (r *MongoRepo) DropIndex(ctx context.Context, name string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.coll.Indexes().DropOne(timeoutCtx, name)
}

// Explain runs the find described by q through explain("executionStats").
func (r *MongoRepo) Explain(ctx context.Context, q Query) (Plan, error) {
	find := bson.D{
		{Key: "find", Value: r.coll.Name()},
		{Key: "filter", Value: q.Filter()},
	}
	sort, err := q.SortSpec()
	if err != nil {
		return Plan{}, err
	}
	if sort != nil {
		find = append(find, bson.E{Key: "sort", Value: sort})
	}
	cmd := bson.D{
		{Key: "explain", Value: find},
		{Key: "verbosity", Value: "executionStats"},
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var raw bson.M
	if err := r.coll.Database().RunCommand(timeoutCtx, cmd).Decode(&raw); err != nil {
		return Plan{}, err
	}
	return planFromExplain(raw), nil
}

func planFromExplain(raw bson.M) Plan {
	var p Plan
	if planner := asDoc(raw["queryPlanner"]); planner != nil {
		winning := asDoc(planner["winningPlan"])
		// Slot-based engine plans nest the classic tree under queryPlan.
		if qp := asDoc(winning["queryPlan"]); qp != nil {
			winning = qp
		}
		p.Stages, p.IndexName = winningStages(winning)
	}
	if stats := asDoc(raw["executionStats"]); stats != nil {
		p.ReturnedCount = toInt64(stats["nReturned"])
		p.TotalKeysExamined = toInt64(stats["totalKeysExamined"])
		p.TotalDocsExamined = toInt64(stats["totalDocsExamined"])
	}
	return p
}
