package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/boy-who-codes/nodeflix/internal/auth"
	"github.com/boy-who-codes/nodeflix/internal/store"
)

type ListingHandler struct {
	listingStore *store.ListingStore
	renderer     *Renderer
	logger       *slog.Logger
}

func NewListingHandler(ls *store.ListingStore, renderer *Renderer, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		listingStore: ls,
		renderer:     renderer,
		logger:       logger,
	}
}

// Home renders the public landing page.
func (h *ListingHandler) Home(w http.ResponseWriter, r *http.Request) {
	_, loggedIn := auth.CurrentUser(r.Context())
	h.renderer.Render(w, "home.html", map[string]any{
		"Title":    "NodeFlix",
		"LoggedIn": loggedIn,
	})
}

// Listings renders the catalog. The route sits behind RequireAuth.
func (h *ListingHandler) Listings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingStore.List()
	if err != nil {
		h.logger.Error("list listings", "error", err)
		h.renderer.Error(w)
		return
	}
	h.renderer.Render(w, "listings.html", map[string]any{
		"Title":    "Listings",
		"LoggedIn": true,
		"Listings": listings,
	})
}

// ListingDetail renders a single title. Unknown ids get the not-found page.
func (h *ListingHandler) ListingDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.renderer.NotFound(w)
		return
	}

	listing, err := h.listingStore.GetByID(id)
	if err != nil {
		h.logger.Error("get listing", "error", err)
		h.renderer.Error(w)
		return
	}
	if listing == nil {
		h.renderer.NotFound(w)
		return
	}

	h.renderer.Render(w, "listing_detail.html", map[string]any{
		"Title":    listing.Title,
		"LoggedIn": true,
		"Listing":  listing,
	})
}
