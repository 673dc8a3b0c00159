package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/boy-who-codes/nodeflix/internal/database"
	"github.com/boy-who-codes/nodeflix/internal/store"
)

func setupListingHandler(t *testing.T) (*ListingHandler, *store.ListingStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ls := store.NewListingStore(db)
	return NewListingHandler(ls, testRenderer(t), discardLogger()), ls
}

func TestListingsPage(t *testing.T) {
	h, _ := setupListingHandler(t)

	req := httptest.NewRequest("GET", "/listings", nil)
	rec := httptest.NewRecorder()
	h.Listings(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Listings") {
		t.Errorf("body missing page title: %q", rec.Body.String())
	}
}

func TestListingDetail(t *testing.T) {
	h, ls := setupListingHandler(t)

	listings, err := ls.List()
	if err != nil {
		t.Fatalf("list listings: %v", err)
	}
	if len(listings) == 0 {
		t.Fatal("expected seeded listings")
	}

	req := httptest.NewRequest("GET", "/listings/"+strconv.FormatInt(listings[0].ID, 10), nil)
	req.SetPathValue("id", strconv.FormatInt(listings[0].ID, 10))
	rec := httptest.NewRecorder()
	h.ListingDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), listings[0].Title) {
		t.Errorf("body missing listing title %q", listings[0].Title)
	}
}

func TestListingDetailUnknownID(t *testing.T) {
	h, _ := setupListingHandler(t)

	req := httptest.NewRequest("GET", "/listings/9999", nil)
	req.SetPathValue("id", "9999")
	rec := httptest.NewRecorder()
	h.ListingDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListingDetailMalformedID(t *testing.T) {
	h, _ := setupListingHandler(t)

	req := httptest.NewRequest("GET", "/listings/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.ListingDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
