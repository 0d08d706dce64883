package book

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestQuery_Filter(t *testing.T) {
	t.Run("empty query matches everything", func(t *testing.T) {
		assert.Equal(t, bson.D{}, Query{}.Filter())
	})

	t.Run("equality fields", func(t *testing.T) {
		q := Query{Genre: "Prayer", Author: "T.D. Jakes", InStock: BoolPtr(true)}

		assert.Equal(t, bson.D{
			{Key: "author", Value: "T.D. Jakes"},
			{Key: "genre", Value: "Prayer"},
			{Key: "in_stock", Value: true},
		}, q.Filter())
	})

	t.Run("published after", func(t *testing.T) {
		q := Query{YearAfter: IntPtr(2015)}

		assert.Equal(t, bson.D{
			{Key: "published_year", Value: bson.D{{Key: "$gt", Value: 2015}}},
		}, q.Filter())
	})

	t.Run("year range shares one field", func(t *testing.T) {
		q := Query{YearAfter: IntPtr(2000), YearBefore: IntPtr(2010)}

		assert.Equal(t, bson.D{
			{Key: "published_year", Value: bson.D{
				{Key: "$gt", Value: 2000},
				{Key: "$lt", Value: 2010},
			}},
		}, q.Filter())
	})

	t.Run("combined stock and year", func(t *testing.T) {
		q := Query{InStock: BoolPtr(true), YearAfter: IntPtr(2010)}

		f := q.Filter()
		require.Len(t, f, 2)
		assert.Equal(t, "in_stock", f[0].Key)
		assert.Equal(t, "published_year", f[1].Key)
	})

	t.Run("text search", func(t *testing.T) {
		q := Query{Text: "prayer"}

		assert.Equal(t, bson.D{
			{Key: "$text", Value: bson.D{{Key: "$search", Value: "prayer"}}},
		}, q.Filter())
	})

	t.Run("false stock flag is kept", func(t *testing.T) {
		q := Query{InStock: BoolPtr(false)}

		assert.Equal(t, bson.D{{Key: "in_stock", Value: false}}, q.Filter())
	})
}

func TestQuery_Projection(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		assert.Nil(t, Query{}.Projection())
	})

	t.Run("include fields and suppress id", func(t *testing.T) {
		q := Query{Fields: []string{"title", "author", "price"}}

		assert.Equal(t, bson.D{
			{Key: "title", Value: 1},
			{Key: "author", Value: 1},
			{Key: "price", Value: 1},
			{Key: "_id", Value: 0},
		}, q.Projection())
	})

	t.Run("explicit id is still suppressed", func(t *testing.T) {
		q := Query{Fields: []string{"_id", "title"}}

		assert.Equal(t, bson.D{
			{Key: "title", Value: 1},
			{Key: "_id", Value: 0},
		}, q.Projection())
	})
}

func TestQuery_SortSpec(t *testing.T) {
	t.Run("natural order", func(t *testing.T) {
		s, err := Query{}.SortSpec()
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("year descending", func(t *testing.T) {
		s, err := Query{Sort: "year", Desc: true}.SortSpec()
		require.NoError(t, err)
		assert.Equal(t, bson.D{{Key: "published_year", Value: -1}}, s)
	})

	t.Run("price ascending", func(t *testing.T) {
		s, err := Query{Sort: "price"}.SortSpec()
		require.NoError(t, err)
		assert.Equal(t, bson.D{{Key: "price", Value: 1}}, s)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Query{Sort: "isbn"}.SortSpec()
		assert.True(t, errors.Is(err, ErrInvalidSort))
	})
}

func TestQuery_FindOptions(t *testing.T) {
	t.Run("invalid sort is rejected", func(t *testing.T) {
		_, err := Query{Sort: "rating"}.FindOptions()
		assert.ErrorIs(t, err, ErrInvalidSort)
	})

	t.Run("valid query", func(t *testing.T) {
		opts, err := Query{Sort: "title", Limit: 5, Offset: 5, Fields: []string{"title"}}.FindOptions()
		require.NoError(t, err)
		assert.NotNil(t, opts)
	})
}
