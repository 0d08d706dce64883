package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func stageNames(t *testing.T, p []bson.D) []string {
	t.Helper()
	names := make([]string, 0, len(p))
	for _, stage := range p {
		require.Len(t, stage, 1)
		names = append(names, stage[0].Key)
	}
	return names
}

func TestGenreStatsPipeline(t *testing.T) {
	p := GenreStatsPipeline()

	assert.Equal(t, []string{"$group", "$sort"}, stageNames(t, p))

	group := p[0][0].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "_id", Value: "$genre"}, group[0])
	assert.Equal(t, bson.E{Key: "averagePrice", Value: bson.D{{Key: "$avg", Value: "$price"}}}, group[1])

	sort := p[1][0].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "averagePrice", Value: -1}, sort[0])
}

func TestAuthorCountsPipeline(t *testing.T) {
	t.Run("top one", func(t *testing.T) {
		p := AuthorCountsPipeline(1)

		assert.Equal(t, []string{"$group", "$sort", "$limit"}, stageNames(t, p))
		assert.Equal(t, 1, p[2][0].Value)
	})

	t.Run("no limit", func(t *testing.T) {
		p := AuthorCountsPipeline(0)

		assert.Equal(t, []string{"$group", "$sort"}, stageNames(t, p))
	})

	t.Run("ties broken by author", func(t *testing.T) {
		sort := AuthorCountsPipeline(0)[1][0].Value.(bson.D)

		assert.Equal(t, bson.D{{Key: "bookCount", Value: -1}, {Key: "_id", Value: 1}}, sort)
	})
}

func TestDecadeCountsPipeline(t *testing.T) {
	p := DecadeCountsPipeline()

	assert.Equal(t, []string{"$project", "$group", "$sort"}, stageNames(t, p))

	project := p[0][0].Value.(bson.D)
	assert.Equal(t, "decade", project[0].Key)
	assert.Equal(t, bson.D{{Key: "$subtract", Value: bson.A{
		"$published_year",
		bson.D{{Key: "$mod", Value: bson.A{"$published_year", 10}}},
	}}}, project[0].Value)

	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, p[2][0].Value)
}

func TestStockSummaryPipeline(t *testing.T) {
	p := StockSummaryPipeline()

	assert.Equal(t, []string{"$group", "$sort"}, stageNames(t, p))

	group := p[0][0].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "_id", Value: "$in_stock"}, group[0])
	assert.Equal(t, bson.E{Key: "totalValue", Value: bson.D{{Key: "$sum", Value: "$price"}}}, group[1])
}
