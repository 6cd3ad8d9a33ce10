package http

import (
	"errors"
	"log/slog"
	"net/http"

	"wishlist/internal/core"
)

type setStatusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
	OK     bool        `json:"ok"`
	Status core.Status `json:"status,omitempty"`
}

// handleSetStatus applies a status to an item. Sending the status the item
// already has toggles it back to unset; the response carries the resulting
// status so the client never has to guess.
func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		writeError(w, http.StatusUnprocessableEntity, "item id is required")
		return
	}

	var req setStatusRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := core.ParseStatus(req.Status)
	if err != nil {
		if errors.Is(err, core.ErrInvalidStatus) {
			writeError(w, http.StatusUnprocessableEntity, "status must be 'shortlisted' or 'purchased'")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.reconciler.SetStatus(r.Context(), itemID, status)
	s.metrics.statusChanges.Add(1)
	slog.InfoContext(r.Context(), "Status set", "item_id", itemID, "requested", string(req.Status), "result", string(result))

	writeJSON(w, http.StatusOK, statusResponse{OK: true, Status: result})
}

func (s *Server) handleClearStatus(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		writeError(w, http.StatusUnprocessableEntity, "item id is required")
		return
	}

	s.reconciler.SetStatus(r.Context(), itemID, core.StatusUnset)
	s.metrics.statusChanges.Add(1)
	slog.InfoContext(r.Context(), "Status cleared", "item_id", itemID)

	writeOK(w, http.StatusOK)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.reconciler.ResetAll(r.Context())
	s.metrics.statusChanges.Add(1)
	slog.InfoContext(r.Context(), "All statuses reset")

	writeOK(w, http.StatusOK)
}

// handleSummary aggregates the catalog and the live statuses into the budget
// figures. The budget defaults to the configured ceiling and can be
// overridden per request with ?budget=N.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	categories, err := s.listCategories(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary catalog error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	budget := parseBudget(r, s.defaultBudget)
	summary := core.Summarize(categories, s.reconciler.Snapshot(), budget)

	writeJSON(w, http.StatusOK, summary)
}
