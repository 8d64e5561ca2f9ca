package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/julianstephens/happyhour/internal/dataset"
	"github.com/julianstephens/happyhour/internal/favorites"
	"github.com/julianstephens/happyhour/internal/filter"
	"github.com/julianstephens/happyhour/internal/logger"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/prices"
	"github.com/julianstephens/happyhour/internal/render"
)

const (
	ZoneQueryArg          = "zone"
	VenueQueryArg         = "venue"
	DayQueryArg           = "day"
	AtQueryArg            = "at"
	WhenQueryArg          = "when"
	AllDayQueryArg        = "all_day"
	FavoritesOnlyQueryArg = "favorites_only"
	MaxPriceQueryArg      = "max_price"
	RawQueryArg           = "raw"
)

// FavoritesRequest is the body of PUT /v1/favorites.
type FavoritesRequest struct {
	Keys []string `json:"keys"`
}

// FavoritesResponse reports the new mapping and whether it was saved.
type FavoritesResponse struct {
	Favorites models.Favorites `json:"favorites"`
	Persisted bool             `json:"persisted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type HappyHourHandler struct {
	ds    *dataset.Dataset
	store *favorites.Store
	now   func() time.Time

	mu   sync.Mutex
	favs models.Favorites
}

// NewHappyHourHandler serves ds and the favorites in store. now supplies the
// clock for the "when" presets, already in the configured timezone.
func NewHappyHourHandler(ds *dataset.Dataset, store *favorites.Store, now func() time.Time) *HappyHourHandler {
	favs, _ := store.Load()
	return &HappyHourHandler{
		ds:    ds,
		store: store,
		now:   now,
		favs:  favs,
	}
}

// Ping handles GET /ping
func (h *HappyHourHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "pong"})
}

// ListHappyHours handles GET /v1/happyhours
func (h *HappyHourHandler) ListHappyHours(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	criteria, err := h.parseCriteria(vals)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	raw, _ := strconv.ParseBool(vals.Get(RawQueryArg))

	favs := h.snapshot()
	criteria.Favorites = favs

	promos := filter.Apply(h.ds, criteria)
	filter.Sort(promos)

	writeJSON(w, r, http.StatusOK, render.Rows(promos, render.Options{Raw: raw, Favorites: favs}))
}

// ListZones handles GET /v1/zones
func (h *HappyHourHandler) ListZones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, filter.Zones(h.ds))
}

// GetFavorites handles GET /v1/favorites
func (h *HappyHourHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.snapshot())
}

// PutFavorites handles PUT /v1/favorites. The selection replaces the whole
// favorites set. A failed save is reported in the body, not as a 5xx.
func (h *HappyHourHandler) PutFavorites(w http.ResponseWriter, r *http.Request) {
	var req FavoritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	h.mu.Lock()
	merged, err := h.store.Select(h.favs, req.Keys)
	h.favs = merged
	h.mu.Unlock()

	if err != nil {
		logger.Warn("favorites not persisted", logKeyvals(r, "error", err)...)
	}
	writeJSON(w, r, http.StatusOK, FavoritesResponse{Favorites: merged.Clone(), Persisted: err == nil})
}

func (h *HappyHourHandler) snapshot() models.Favorites {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.favs.Clone()
}

func (h *HappyHourHandler) parseCriteria(vals url.Values) (filter.Criteria, error) {
	var c filter.Criteria
	var err error

	c.Zone = vals.Get(ZoneQueryArg)
	c.Venue = vals.Get(VenueQueryArg)

	if c.Day, err = filter.ParseDay(vals.Get(DayQueryArg)); err != nil {
		return c, err
	}
	if at := vals.Get(AtQueryArg); at != "" {
		if c.At, err = filter.ParseAt(at); err != nil {
			return c, err
		}
	}
	if when := vals.Get(WhenQueryArg); when != "" {
		preset, err := filter.ParsePreset(when)
		if err != nil {
			return c, err
		}
		preset.Apply(&c, h.now())
	}
	if c.MaxDrinkPrice, err = prices.ParseBudget(vals.Get(MaxPriceQueryArg)); err != nil {
		return c, err
	}
	c.AllDayOnly, _ = strconv.ParseBool(vals.Get(AllDayQueryArg))
	c.FavoritesOnly, _ = strconv.ParseBool(vals.Get(FavoritesOnlyQueryArg))
	return c, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Error encoding response", logKeyvals(r, "error", err)...)
	}
}

// logKeyvals prefixes keyvals with the request ID set by the router.
func logKeyvals(r *http.Request, keyvals ...interface{}) []interface{} {
	return append([]interface{}{"request_id", RequestID(r.Context())}, keyvals...)
}
