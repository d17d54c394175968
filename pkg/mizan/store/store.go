// Package store defines the datastore boundary of the categorization
// engine: documents come in, annotations go out. Everything else about the
// datastore (authentication, serving, import) lives outside this module.
package store

import "context"

// Store is the interface the batch pipeline reads from and writes to.
type Store interface {
	Close() error

	// CountDocuments returns the total number of documents to categorize.
	CountDocuments(ctx context.Context) (int64, error)

	// FetchPage returns up to limit documents starting at offset, ordered
	// by id.
	FetchPage(ctx context.Context, offset, limit int) ([]Document, error)

	// UpsertAnnotations writes a batch of annotations, keyed by document
	// id, as a single bulk operation.
	UpsertAnnotations(ctx context.Context, anns []Annotation) error
}

// Document is an immutable input record. Text may be present in more than
// one field depending on the data source.
type Document struct {
	ID     int64
	TextEn string // translated text
	TextAr string // original-language text
}

// Text returns the effective text: candidate fields in fixed preference
// order, first non-empty one wins.
func (d Document) Text() string {
	if d.TextEn != "" {
		return d.TextEn
	}
	return d.TextAr
}

// Annotation is the output record upserted per document.
type Annotation struct {
	ID          int64
	CategoryID  string
	Subcategory string // "" persists as null
	Keywords    []string
}
