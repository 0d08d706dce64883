package seed

import (
	"fmt"
	"io"
)

// WriteReport prints the insert count and one line per read-back book.
func WriteReport(w io.Writer, res Result) error {
	if _, err := fmt.Fprintf(w, "%d books were successfully inserted into the database\n", res.InsertedCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\nInserted books:"); err != nil {
		return err
	}
	for i, b := range res.Books {
		if _, err := fmt.Fprintf(w, "%d. \"%s\" by %s (%d)\n", i+1, b.Title, b.Author, b.PublishedYear); err != nil {
			return err
		}
	}
	return nil
}
