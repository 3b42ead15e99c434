package api

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/gray-logic-units/internal/catalog"
	"github.com/nerrad567/gray-logic-units/internal/units"
)

// CategoryResponse is one category with its ordered members.
type CategoryResponse struct {
	Category units.Category `json:"category"`
	Members  []units.Member `json:"members"`
}

// SymbolResponse is the result of a reverse symbol lookup.
type SymbolResponse struct {
	Symbol    string      `json:"symbol"`
	Matches   []units.Ref `json:"matches"`
	Ambiguous bool        `json:"ambiguous"`
}

// ValidateResponse reports whether a symbol belongs to a category.
type ValidateResponse struct {
	Category units.Category `json:"category"`
	Symbol   string         `json:"symbol"`
	Valid    bool           `json:"valid"`
	Member   *units.Member  `json:"member,omitempty"`
}

// CatalogStatusResponse describes the stored catalog snapshot.
type CatalogStatusResponse struct {
	Categories int            `json:"categories"`
	Members    int            `json:"members"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
	LastSync   catalog.Report `json:"last_sync"`
	Breaking   bool           `json:"breaking"`
}

// handleListCategories returns every category with its members.
func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := units.Categories()
	out := make([]CategoryResponse, 0, len(categories))

	for _, c := range categories {
		members, err := units.MembersOf(c)
		if err != nil {
			s.logger.Error("registry category without members", "category", c, "error", err)
			writeInternalError(w, "registry inconsistent")
			return
		}
		out = append(out, CategoryResponse{Category: c, Members: members})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": out,
		"count":      len(out),
	})
}

// handleGetCategory returns one category's members.
func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	c := units.Category(chi.URLParam(r, "category"))

	members, err := units.MembersOf(c)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CategoryResponse{Category: c, Members: members})
}

// handleGetMember returns a single member by symbolic name.
func (s *Server) handleGetMember(w http.ResponseWriter, r *http.Request) {
	c := units.Category(chi.URLParam(r, "category"))
	name := chi.URLParam(r, "member")

	symbol, err := units.SymbolOf(c, name)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, units.Ref{Category: c, Name: name, Symbol: symbol})
}

// handleLookupSymbol returns every member across categories that uses the
// symbol. Matching is exact: "kw" does not find "kW".
func (s *Server) handleLookupSymbol(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(symbol)
		if err != nil {
			writeBadRequest(w, "invalid symbol encoding")
			return
		}
		symbol = unescaped
	}
	if symbol == "" {
		writeBadRequest(w, "symbol is required")
		return
	}

	matches := units.Lookup(symbol)
	if len(matches) == 0 {
		writeNotFound(w, "unknown symbol")
		return
	}

	writeJSON(w, http.StatusOK, SymbolResponse{
		Symbol:    symbol,
		Matches:   matches,
		Ambiguous: len(matches) > 1,
	})
}

// handleValidate checks ?category=&symbol= without failing on an unknown
// symbol; only an unknown category is an error.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := units.ParseCategory(q.Get("category"))
	if err != nil {
		writeRegistryError(w, err)
		return
	}
	symbol := q.Get("symbol")

	resp := ValidateResponse{Category: c, Symbol: symbol}
	if m, err := units.MemberBySymbol(c, symbol); err == nil {
		resp.Valid = true
		resp.Member = &m
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleCatalogStatus reports the stored snapshot and the startup sync
// result.
func (s *Server) handleCatalogStatus(w http.ResponseWriter, r *http.Request) {
	resp := CatalogStatusResponse{
		Categories: len(units.Categories()),
		Members:    len(units.All()),
		LastSync:   s.syncReport,
		Breaking:   s.syncReport.Breaking(),
	}

	if s.snapshot != nil {
		t, ok, err := s.snapshot.UpdatedAt(r.Context())
		if err != nil {
			s.logger.Error("reading catalog snapshot time", "error", err)
			writeInternalError(w, "failed to read catalog snapshot")
			return
		}
		if ok {
			resp.UpdatedAt = &t
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleIngestStats returns accepted and rejected reading counters.
func (s *Server) handleIngestStats(w http.ResponseWriter, _ *http.Request) {
	if s.ingest == nil {
		writeError(w, http.StatusServiceUnavailable, ErrCodeUnavailable, "ingest is not enabled")
		return
	}
	writeJSON(w, http.StatusOK, s.ingest.Stats())
}

// writeRegistryError maps registry lookup errors to 404 responses.
func writeRegistryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, units.ErrUnknownCategory):
		writeNotFound(w, "unknown category")
	case errors.Is(err, units.ErrUnknownMember):
		writeNotFound(w, "unknown member")
	case errors.Is(err, units.ErrUnknownSymbol):
		writeNotFound(w, "unknown symbol")
	default:
		writeInternalError(w, "registry lookup failed")
	}
}
