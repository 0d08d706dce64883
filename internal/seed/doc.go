// Package seed loads a fixed list of books into a MongoDB collection.
//
// A run connects, drops the target collection if it already holds any
// documents, inserts every record in one ordered batch, reads the
// collection back and closes the connection. The drop is destructive and
// cannot be undone: the loader always starts from an empty collection, so
// running it twice leaves exactly the same records as running it once.
//
// Failures are not retried. Whatever stage fails, the connection is closed
// before Run returns.
package seed
