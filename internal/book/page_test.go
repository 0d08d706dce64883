package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Offset(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		assert.Equal(t, 0, Page{Number: 1, Size: 5}.Offset())
	})

	t.Run("second page", func(t *testing.T) {
		assert.Equal(t, 5, Page{Number: 2, Size: 5}.Offset())
	})

	t.Run("zero page clamps to first", func(t *testing.T) {
		assert.Equal(t, 0, Page{Number: 0, Size: 5}.Offset())
		assert.Equal(t, 0, Page{Number: -3, Size: 5}.Offset())
	})

	t.Run("default size", func(t *testing.T) {
		assert.Equal(t, DefaultPageSize*2, Page{Number: 3}.Offset())
	})
}

func TestPage_Apply(t *testing.T) {
	q := Page{Number: 2, Size: 5}.Apply(Query{Genre: "Prayer"})

	assert.Equal(t, "Prayer", q.Genre)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, 5, q.Offset)
}
