package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"estate-listings/models"
)

var csvHeader = []string{
	"id", "listing_type", "type", "title", "address", "city", "state",
	"price", "price_type", "bedrooms", "bathrooms", "sqft", "status",
	"amenities", "furnished", "pet_friendly", "available_date",
}

// CSVWriter exports listings to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one row per listing.
func (c *CSVWriter) Write(ctx context.Context, listings []*models.Listing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range listings {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		if err := c.writer.Write(csvRow(l)); err != nil {
			return fmt.Errorf("csv: write row %q: %w", l.ID, err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

func csvRow(l *models.Listing) []string {
	available := ""
	if l.AvailableDate != nil {
		available = l.AvailableDate.Format(availableDateLayout)
	}
	return []string{
		l.ID,
		string(l.ListingType),
		string(l.Type),
		l.Title,
		l.Address,
		l.City,
		l.State,
		strconv.FormatFloat(l.Price, 'f', 2, 64),
		string(l.PriceType),
		strconv.Itoa(l.Bedrooms),
		strconv.Itoa(l.Bathrooms),
		strconv.Itoa(l.Sqft),
		string(l.Status),
		strings.Join(l.Amenities, ";"),
		strconv.FormatBool(l.Furnished),
		strconv.FormatBool(l.PetFriendly),
		available,
	}
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
