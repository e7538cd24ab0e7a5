package storage

import (
	"context"

	"estate-listings/models"
)

// ListingWriter is the interface any export or persistence backend must satisfy.
type ListingWriter interface {
	Write(ctx context.Context, listings []*models.Listing) error
	Close() error
}

// ListingReader returns a previously stored snapshot in dataset order.
type ListingReader interface {
	FetchAll(ctx context.Context) ([]*models.Listing, error)
}

var (
	_ ListingWriter = (*CSVWriter)(nil)
	_ ListingWriter = (*SQLStore)(nil)
	_ ListingReader = (*SQLStore)(nil)
)
