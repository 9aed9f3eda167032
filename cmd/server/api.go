package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"elective-hub/contract"
	"elective-hub/domain"
	apperrors "elective-hub/errors"
	"elective-hub/gateway"
	"elective-hub/services"
)

// api is the thin HTTP surface in front of the selection engine. It does
// no business logic of its own: decode, authenticate, delegate, map the
// typed error to a status code.
type api struct {
	log        *slog.Logger
	selections contract.ISelectionService
	occupancy  contract.IOccupancyReader
	auth       services.IAuthService
	verifier   contract.ITokenVerifier
	catalog    *services.CatalogService
	sessions   *gateway.Manager
}

func (a *api) register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/login", a.login)
	mux.HandleFunc("POST /api/logout", a.logout)
	mux.HandleFunc("PUT /api/electives/{electiveID}/students/{studentID}/selection", a.setSelection)
	mux.HandleFunc("DELETE /api/electives/{electiveID}/students/{studentID}/selection", a.deleteSelection)
	mux.HandleFunc("GET /api/electives/{electiveID}/occupancy", a.enrolledCounts)
	mux.HandleFunc("GET /api/catalog", a.searchCatalog)
}

func (a *api) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	token, err := a.auth.Login(req.UserID, req.Password)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.reply(w, http.StatusOK, map[string]string{"token": token})
}

// logout terminates the caller's live websocket session, if any. The
// token itself stays valid until it expires.
func (a *api) logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := a.identify(w, r)
	if !ok {
		return
	}
	a.sessions.CloseUser(identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) setSelection(w http.ResponseWriter, r *http.Request) {
	identity, ok := a.identify(w, r)
	if !ok {
		return
	}
	electiveID, studentID, ok := pathIDs(w, r)
	if !ok {
		return
	}

	var req struct {
		SubjectID int64 `json:"subject_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	err := a.selections.SetSelection(r.Context(), identity.UserID, studentID,
		electiveID, domain.SubjectID(req.SubjectID))
	if err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) deleteSelection(w http.ResponseWriter, r *http.Request) {
	identity, ok := a.identify(w, r)
	if !ok {
		return
	}
	electiveID, studentID, ok := pathIDs(w, r)
	if !ok {
		return
	}

	if err := a.selections.DeleteSelection(r.Context(), identity.UserID, studentID, electiveID); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) enrolledCounts(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.identify(w, r); !ok {
		return
	}
	raw := r.PathValue("electiveID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		http.Error(w, "bad elective id", http.StatusBadRequest)
		return
	}

	occupancy, err := a.occupancy.EnrolledCounts(domain.ElectiveID(id))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.reply(w, http.StatusOK, map[string]domain.Occupancy{"subject_enrolled_counts": occupancy})
}

func (a *api) searchCatalog(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.identify(w, r); !ok {
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "missing query", http.StatusBadRequest)
		return
	}
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	hits, err := a.catalog.Search(r.Context(), query, limit)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.reply(w, http.StatusOK, map[string]any{"hits": hits})
}

// identify resolves the bearer token into an identity, or ends the
// request as 401.
func (a *api) identify(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return domain.Identity{}, false
	}
	identity, err := a.verifier.Verify(token)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return domain.Identity{}, false
	}
	return identity, true
}

func pathIDs(w http.ResponseWriter, r *http.Request) (domain.ElectiveID, string, bool) {
	electiveRaw := r.PathValue("electiveID")
	electiveID, err := strconv.ParseInt(electiveRaw, 10, 64)
	if err != nil {
		http.Error(w, "bad elective id", http.StatusBadRequest)
		return 0, "", false
	}
	studentID := r.PathValue("studentID")
	if studentID == "" {
		http.Error(w, "bad student id", http.StatusBadRequest)
		return 0, "", false
	}
	return domain.ElectiveID(electiveID), studentID, true
}

func (a *api) reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.log.Error("Failed to write response", "err", err)
	}
}

// fail maps the typed error taxonomy onto HTTP statuses. Anything
// unrecognized is an internal error and stays opaque to the client.
func (a *api) fail(w http.ResponseWriter, err error) {
	var notFound apperrors.NotFoundError
	var notEligible apperrors.NotEligibleError

	switch {
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, apperrors.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.As(err, &notFound), errors.Is(err, apperrors.ErrNotEnrolled):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrAlreadyEnrolled), errors.Is(err, apperrors.ErrSubjectFull):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &notEligible):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		a.log.Error("Request failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
