package book

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// GenreStatsPipeline groups by genre with average price and count,
// highest average first.
func GenreStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "averagePrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "averagePrice", Value: -1},
			{Key: "_id", Value: 1},
		}}},
	}
}

// AuthorCountsPipeline counts books per author, most prolific first.
// A positive limit keeps only the top entries.
func AuthorCountsPipeline(limit int) mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author"},
			{Key: "bookCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "bookCount", Value: -1},
			{Key: "_id", Value: 1},
		}}},
	}
	if limit > 0 {
		p = append(p, bson.D{{Key: "$limit", Value: limit}})
	}
	return p
}

// DecadeCountsPipeline buckets publication years into decades
// (year - year % 10), oldest first.
func DecadeCountsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$project", Value: bson.D{
			{Key: "decade", Value: bson.D{{Key: "$subtract", Value: bson.A{
				"$published_year",
				bson.D{{Key: "$mod", Value: bson.A{"$published_year", 10}}},
			}}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$decade"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// StockSummaryPipeline totals price and count per in_stock value.
func StockSummaryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$in_stock"},
			{Key: "totalValue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
	}
}
