package book

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// TextIndexName is the name of the full-text index over title and genre.
const TextIndexName = "TextSearchIndex"

// IndexModels returns the indexes the catalog relies on: title lookups,
// author listings newest first, and text search.
func IndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "title", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "author", Value: 1},
				{Key: "published_year", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "genre", Value: "text"},
			},
			Options: options.Index().SetName(TextIndexName),
		},
	}
}

// winningStages flattens a queryPlanner.winningPlan into its stage names,
// outermost first, and reports the first index name seen.
func winningStages(plan bson.M) ([]string, string) {
	var (
		stages []string
		index  string
	)
	for plan != nil {
		if s, ok := plan["stage"].(string); ok {
			stages = append(stages, s)
		}
		if name, ok := plan["indexName"].(string); ok && index == "" {
			index = name
		}
		next := asDoc(plan["inputStage"])
		if next == nil {
			// Plans with several children (e.g. OR) expose inputStages.
			if children, ok := plan["inputStages"].(bson.A); ok && len(children) > 0 {
				next = asDoc(children[0])
			}
		}
		plan = next
	}
	return stages, index
}

// asDoc accepts an embedded document in either decoded form.
func asDoc(v any) bson.M {
	switch d := v.(type) {
	case bson.M:
		return d
	case bson.D:
		m := make(bson.M, len(d))
		for _, e := range d {
			m[e.Key] = e.Value
		}
		return m
	}
	return nil
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	case int:
		return int64(n)
	}
	return 0
}
