package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"estate-listings/models"
	"estate-listings/utils"
)

const availableDateLayout = "2006-01-02"

// listColumns is the insert and select column order of the listings table.
var listColumns = []string{
	"position", "id", "listing_type", "type", "title", "address", "city", "state",
	"price", "price_type", "bedrooms", "bathrooms", "sqft", "image", "images",
	"featured", "status", "amenities", "year_built", "parking", "furnished",
	"pet_friendly", "available_date", "description",
}

// schema is portable between PostgreSQL and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		position       INTEGER          NOT NULL,
		id             TEXT             PRIMARY KEY,
		listing_type   TEXT             NOT NULL,
		type           TEXT             NOT NULL,
		title          TEXT             NOT NULL DEFAULT '',
		address        TEXT             NOT NULL DEFAULT '',
		city           TEXT             NOT NULL DEFAULT '',
		state          TEXT             NOT NULL DEFAULT '',
		price          DOUBLE PRECISION NOT NULL DEFAULT 0,
		price_type     TEXT             NOT NULL,
		bedrooms       INTEGER          NOT NULL DEFAULT 0,
		bathrooms      INTEGER          NOT NULL DEFAULT 0,
		sqft           INTEGER          NOT NULL DEFAULT 0,
		image          TEXT             NOT NULL DEFAULT '',
		images         TEXT             NOT NULL DEFAULT '',
		featured       BOOLEAN          NOT NULL DEFAULT FALSE,
		status         TEXT             NOT NULL,
		amenities      TEXT             NOT NULL DEFAULT '',
		year_built     INTEGER          NOT NULL DEFAULT 0,
		parking        INTEGER          NOT NULL DEFAULT 0,
		furnished      BOOLEAN          NOT NULL DEFAULT FALSE,
		pet_friendly   BOOLEAN          NOT NULL DEFAULT FALSE,
		available_date TEXT,
		description    TEXT             NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_position     ON listings(position)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_listing_type ON listings(listing_type)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_price        ON listings(price)`,
}

// listSep joins multi-valued columns. Amenity tags and image URLs never contain it.
const listSep = "|"

type listingRow struct {
	Position      int            `db:"position"`
	ID            string         `db:"id"`
	ListingType   string         `db:"listing_type"`
	Type          string         `db:"type"`
	Title         string         `db:"title"`
	Address       string         `db:"address"`
	City          string         `db:"city"`
	State         string         `db:"state"`
	Price         float64        `db:"price"`
	PriceType     string         `db:"price_type"`
	Bedrooms      int            `db:"bedrooms"`
	Bathrooms     int            `db:"bathrooms"`
	Sqft          int            `db:"sqft"`
	Image         string         `db:"image"`
	Images        string         `db:"images"`
	Featured      bool           `db:"featured"`
	Status        string         `db:"status"`
	Amenities     string         `db:"amenities"`
	YearBuilt     int            `db:"year_built"`
	Parking       int            `db:"parking"`
	Furnished     bool           `db:"furnished"`
	PetFriendly   bool           `db:"pet_friendly"`
	AvailableDate sql.NullString `db:"available_date"`
	Description   string         `db:"description"`
}

// SQLStore keeps a listing snapshot in PostgreSQL or SQLite.
type SQLStore struct {
	db     *sqlx.DB
	logger *utils.Logger
}

// NewPostgresStore connects to PostgreSQL, retrying the ping with retry,
// and runs the schema migration.
func NewPostgresStore(ctx context.Context, dsn string, retry utils.RetryConfig, logger *utils.Logger) (*SQLStore, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do(ctx, "postgres ping", db.PingContext); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	s := newSQLStore(db, logger)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteStore opens (or creates) the SQLite database at path. ":memory:"
// gives a private in-memory database.
func NewSQLiteStore(ctx context.Context, path string, logger *utils.Logger) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	// Each connection to ":memory:" is its own database.
	db.SetMaxOpenConns(1)

	s := newSQLStore(db, logger)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func newSQLStore(db *sqlx.DB, logger *utils.Logger) *SQLStore {
	return &SQLStore{db: db, logger: logger.With(db.DriverName())}
}

func (s *SQLStore) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: migrate: %w", s.db.DriverName(), err)
		}
	}
	return nil
}

// Write replaces the stored snapshot with listings, in one transaction.
func (s *SQLStore) Write(ctx context.Context, listings []*models.Listing) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", s.db.DriverName(), err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM listings"); err != nil {
		return fmt.Errorf("%s: clear: %w", s.db.DriverName(), err)
	}

	const batchSize = 50
	for i := 0; i < len(listings); i += batchSize {
		end := i + batchSize
		if end > len(listings) {
			end = len(listings)
		}
		if err := s.insertBatch(ctx, tx, i, listings[i:end]); err != nil {
			return fmt.Errorf("%s: insert batch at %d: %w", s.db.DriverName(), i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", s.db.DriverName(), err)
	}
	s.logger.Info("[store] Stored %d listings", len(listings))
	return nil
}

func (s *SQLStore) insertBatch(ctx context.Context, tx *sqlx.Tx, offset int, batch []*models.Listing) error {
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(listColumns)), ",") + ")"
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*len(listColumns))

	for idx, l := range batch {
		r := toRow(offset+idx, l)
		valueStrings = append(valueStrings, placeholder)
		valueArgs = append(valueArgs,
			r.Position, r.ID, r.ListingType, r.Type, r.Title, r.Address, r.City, r.State,
			r.Price, r.PriceType, r.Bedrooms, r.Bathrooms, r.Sqft, r.Image, r.Images,
			r.Featured, r.Status, r.Amenities, r.YearBuilt, r.Parking, r.Furnished,
			r.PetFriendly, r.AvailableDate, r.Description)
	}

	query := fmt.Sprintf(`
		INSERT INTO listings (%s)
		VALUES %s
		ON CONFLICT (id) DO NOTHING
	`, strings.Join(listColumns, ", "), strings.Join(valueStrings, ","))

	_, err := tx.ExecContext(ctx, tx.Rebind(query), valueArgs...)
	return err
}

// FetchAll returns the stored snapshot in its original dataset order.
func (s *SQLStore) FetchAll(ctx context.Context) ([]*models.Listing, error) {
	var rows []listingRow
	query := fmt.Sprintf("SELECT %s FROM listings ORDER BY position", strings.Join(listColumns, ", "))
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: fetch all: %w", s.db.DriverName(), err)
	}

	listings := make([]*models.Listing, 0, len(rows))
	for _, r := range rows {
		l, err := r.toListing()
		if err != nil {
			return nil, fmt.Errorf("%s: row %q: %w", s.db.DriverName(), r.ID, err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func toRow(position int, l *models.Listing) listingRow {
	r := listingRow{
		Position:    position,
		ID:          l.ID,
		ListingType: string(l.ListingType),
		Type:        string(l.Type),
		Title:       l.Title,
		Address:     l.Address,
		City:        l.City,
		State:       l.State,
		Price:       l.Price,
		PriceType:   string(l.PriceType),
		Bedrooms:    l.Bedrooms,
		Bathrooms:   l.Bathrooms,
		Sqft:        l.Sqft,
		Image:       l.Image,
		Images:      strings.Join(l.Images, listSep),
		Featured:    l.Featured,
		Status:      string(l.Status),
		Amenities:   strings.Join(l.Amenities, listSep),
		YearBuilt:   l.YearBuilt,
		Parking:     l.Parking,
		Furnished:   l.Furnished,
		PetFriendly: l.PetFriendly,
		Description: l.Description,
	}
	if l.AvailableDate != nil {
		r.AvailableDate = sql.NullString{String: l.AvailableDate.Format(availableDateLayout), Valid: true}
	}
	return r
}

func (r listingRow) toListing() (*models.Listing, error) {
	listingType, err := models.ParseListingType(r.ListingType)
	if err != nil {
		return nil, err
	}
	propType, err := models.ParsePropertyType(r.Type)
	if err != nil {
		return nil, err
	}
	priceType, err := models.ParsePriceType(r.PriceType)
	if err != nil {
		return nil, err
	}
	status, err := models.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}

	l := &models.Listing{
		ID:          r.ID,
		Title:       r.Title,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		Price:       r.Price,
		PriceType:   priceType,
		Type:        propType,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Sqft:        r.Sqft,
		Image:       r.Image,
		Images:      splitList(r.Images),
		Featured:    r.Featured,
		Status:      status,
		ListingType: listingType,
		Amenities:   splitList(r.Amenities),
		YearBuilt:   r.YearBuilt,
		Parking:     r.Parking,
		Furnished:   r.Furnished,
		PetFriendly: r.PetFriendly,
		Description: r.Description,
	}
	if r.AvailableDate.Valid && r.AvailableDate.String != "" {
		d, err := time.Parse(availableDateLayout, r.AvailableDate.String)
		if err != nil {
			return nil, fmt.Errorf("available date: %w", err)
		}
		l.AvailableDate = &d
	}
	return l, nil
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSep)
}
