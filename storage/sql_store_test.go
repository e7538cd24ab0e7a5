package storage

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"estate-listings/models"
	"estate-listings/utils"
)

func newMemoryStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := NewSQLiteStore(context.Background(), ":memory:", utils.NewDiscardLogger())
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)
	want := sampleListings()

	if err := s.Write(ctx, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("FetchAll: got %d listings, want %d", len(got), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("listing %d:\n got  %+v\n want %+v", i, got[i], want[i])
		}
	}
}

func TestSQLiteStoreWriteReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	if err := s.Write(ctx, sampleListings()); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(ctx, sampleListings()[1:]); err != nil {
		t.Fatal(err)
	}
	got, err := s.FetchAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("after rewrite: got %d listings, want only id 2", len(got))
	}
}

func TestSQLiteStorePreservesDatasetOrder(t *testing.T) {
	ctx := context.Background()
	s := newMemoryStore(t)

	listings := sampleListings()
	listings[0], listings[1] = listings[1], listings[0]
	if err := s.Write(ctx, listings); err != nil {
		t.Fatal(err)
	}
	got, err := s.FetchAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != "2" || got[1].ID != "1" {
		t.Errorf("order: got %s,%s; want 2,1", got[0].ID, got[1].ID)
	}
}

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return newSQLStore(sqlx.NewDb(db, "postgres"), utils.NewDiscardLogger()), mock
}

func TestPostgresStoreWriteUsesDollarPlaceholders(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM listings")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO listings \(position, id, .*\)\s+VALUES \(\$1,\$2,.*\$24\),\(\$25,.*\$48\)\s+ON CONFLICT \(id\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := s.Write(context.Background(), sampleListings()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStoreWriteRollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM listings")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if err := s.Write(context.Background(), sampleListings()); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStoreFetchAll(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(listColumns).
		AddRow(0, "7", "rent", "condo", "Luxury Condo", "400 5th Ave", "Seattle", "WA",
			4200.0, "rent", 2, 2, 1250, "", "", true, "available", "Gym|Pool", 0, 1, true,
			true, "2024-07-10", "")
	mock.ExpectQuery(`SELECT position, id, .* FROM listings ORDER BY position`).WillReturnRows(rows)

	got, err := s.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d listings, want 1", len(got))
	}
	l := got[0]
	if l.ListingType != models.ListingRent || l.Type != models.Condo || l.Price != 4200 {
		t.Errorf("typed fields: got %+v", l)
	}
	if !reflect.DeepEqual(l.Amenities, []string{"Gym", "Pool"}) {
		t.Errorf("amenities = %v; want [Gym Pool]", l.Amenities)
	}
	if l.AvailableDate == nil || l.AvailableDate.Format("2006-01-02") != "2024-07-10" {
		t.Errorf("available date = %v; want 2024-07-10", l.AvailableDate)
	}
}

func TestPostgresStoreFetchAllRejectsCorruptRow(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(listColumns).
		AddRow(0, "9", "lease", "condo", "", "", "", "", 1.0, "rent", 0, 0, 0, "", "", false,
			"available", "", 0, 0, false, false, nil, "")
	mock.ExpectQuery(`SELECT .* FROM listings`).WillReturnRows(rows)

	if _, err := s.FetchAll(context.Background()); err == nil {
		t.Error("expected error for unknown listing type")
	}
}

func TestPostgresStoreMigrate(t *testing.T) {
	s, mock := newMockStore(t)
	for range schema {
		mock.ExpectExec(`CREATE (TABLE|INDEX) IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
