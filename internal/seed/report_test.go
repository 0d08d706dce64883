package seed

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/book"
)

func TestWriteReport(t *testing.T) {
	res := Result{
		InsertedCount: 2,
		Books: []book.Book{
			{Title: "Crazy Faith", Author: "Michael Todd", PublishedYear: 2021},
			{Title: "Woman, Thou Art Loosed!", Author: "T.D. Jakes", PublishedYear: 1993},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, res))

	want := "2 books were successfully inserted into the database\n" +
		"\nInserted books:\n" +
		"1. \"Crazy Faith\" by Michael Todd (2021)\n" +
		"2. \"Woman, Thou Art Loosed!\" by T.D. Jakes (1993)\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteReport_WriteError(t *testing.T) {
	err := WriteReport(failingWriter{}, Result{InsertedCount: 1})

	assert.EqualError(t, err, "broken pipe")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "collection_reset", CollectionReset.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "unknown", State(42).String())
}
