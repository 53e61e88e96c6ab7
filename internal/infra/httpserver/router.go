package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	appanalysis "textlens/internal/application/analysis"
	domain "textlens/internal/domain/analysis"
	"textlens/internal/infra/oauth"
	"textlens/internal/infra/session"
	"textlens/internal/middleware"
)

const stateCookieName = "textlens_oauth_state"

type Router struct {
	svc         *appanalysis.Service
	sessions    *session.Manager
	providers   map[string]*oauth.Provider
	frontendURL string
}

func NewRouter(svc *appanalysis.Service, sessions *session.Manager, providers []*oauth.Provider, frontendURL string) http.Handler {
	r := &Router{
		svc:         svc,
		sessions:    sessions,
		providers:   make(map[string]*oauth.Provider),
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
	for _, p := range providers {
		r.providers[p.Name] = p
	}

	mux := chi.NewRouter()
	mux.Use(chimw.Recoverer)
	mux.Use(middleware.RequestLogger)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowOriginFunc:  allowPreviewOrigin(frontendURL),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	mux.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "textlens backend is running",
		})
	})

	mux.Route("/api/analyses", func(rt chi.Router) {
		rt.Post("/", r.wrap(r.handleCreate))
		rt.Get("/", r.wrap(r.handleList))
		rt.Put("/{id}", r.wrap(r.handleUpdate))
		rt.Delete("/{id}", r.wrap(r.handleDelete))
	})

	mux.Get("/profile", r.handleProfile)
	mux.Get("/logout", r.handleLogout)
	mux.Get("/auth/{provider}", r.handleAuthStart)
	mux.Get("/auth/{provider}/callback", r.handleAuthCallback)

	return mux
}

// allowPreviewOrigin admits the configured frontend plus Vercel preview
// deployments of it.
func allowPreviewOrigin(frontendURL string) func(r *http.Request, origin string) bool {
	return func(r *http.Request, origin string) bool {
		return origin == frontendURL || strings.HasSuffix(origin, ".vercel.app")
	}
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
		case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrUnsupportedOperation):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			slog.Error("request failed", "path", req.URL.Path, "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Failed to run NLP operation",
				"details": err.Error(),
			})
		}
	}
}

// POST /api/analyses
func (r *Router) handleCreate(w http.ResponseWriter, req *http.Request) error {
	var body domain.Request
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: malformed body", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(body.InputText) == "" || body.Operation == "" {
		return fmt.Errorf("%w: inputText and operation are required", domain.ErrInvalidRequest)
	}

	rec, err := r.svc.AnalyzeAndStore(req.Context(), body.InputText, body.Operation)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, rec)
	return nil
}

// GET /api/analyses
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	list, err := r.svc.History(req.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, list)
	return nil
}

// PUT /api/analyses/{id}
func (r *Router) handleUpdate(w http.ResponseWriter, req *http.Request) error {
	id, err := parseID(req)
	if err != nil {
		return err
	}

	var body struct {
		InputText *string           `json:"inputText"`
		Operation *domain.Operation `json:"operation"`
		Result    json.RawMessage   `json:"result"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: malformed body", domain.ErrInvalidRequest)
	}
	if body.Operation != nil && !body.Operation.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedOperation, *body.Operation)
	}

	patch := domain.Patch{InputText: body.InputText, Operation: body.Operation}
	// A JSON null result means "no change", same as an absent field.
	if len(body.Result) > 0 && string(body.Result) != "null" {
		// Decode the payload against the operation the record will have
		// after the merge. Shape consistency beyond decodability is not
		// re-checked.
		op, err := r.targetOperation(req, id, body.Operation)
		if err != nil {
			return err
		}
		res, err := domain.DecodeResult(op, body.Result)
		if err != nil {
			return err
		}
		patch.Result = res
	}

	rec, err := r.svc.UpdateRecord(req.Context(), id, patch)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rec)
	return nil
}

func (r *Router) targetOperation(req *http.Request, id domain.RecordID, patched *domain.Operation) (domain.Operation, error) {
	if patched != nil {
		return *patched, nil
	}
	list, err := r.svc.History(req.Context())
	if err != nil {
		return "", err
	}
	for _, rec := range list {
		if rec.ID == id {
			return rec.Operation, nil
		}
	}
	return "", domain.ErrNotFound
}

// DELETE /api/analyses/{id}
func (r *Router) handleDelete(w http.ResponseWriter, req *http.Request) error {
	id, err := parseID(req)
	if err != nil {
		// An id that can never exist deletes nothing; delete is 204
		// regardless of prior existence.
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
	if err := r.svc.DeleteRecord(req.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GET /profile
func (r *Router) handleProfile(w http.ResponseWriter, req *http.Request) {
	p, _, ok := r.sessions.FromRequest(req)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GET /logout
func (r *Router) handleLogout(w http.ResponseWriter, req *http.Request) {
	if _, id, ok := r.sessions.FromRequest(req); ok {
		r.sessions.Destroy(id)
	}
	r.sessions.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GET /auth/{provider}
func (r *Router) handleAuthStart(w http.ResponseWriter, req *http.Request) {
	p, ok := r.providers[chi.URLParam(req, "provider")]
	if !ok {
		http.NotFound(w, req)
		return
	}

	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
	})
	http.Redirect(w, req, p.AuthURL(state), http.StatusFound)
}

// GET /auth/{provider}/callback
func (r *Router) handleAuthCallback(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "provider")
	p, ok := r.providers[name]
	if !ok {
		http.NotFound(w, req)
		return
	}

	loginError := r.frontendURL + "/login?error=" + name

	stateCookie, err := req.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != req.URL.Query().Get("state") {
		http.Redirect(w, req, loginError, http.StatusFound)
		return
	}
	code := req.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, req, loginError, http.StatusFound)
		return
	}

	profile, err := p.Exchange(req.Context(), code)
	if err != nil {
		slog.Error("oauth callback failed", "provider", name, "err", err)
		http.Redirect(w, req, loginError, http.StatusFound)
		return
	}

	id := r.sessions.Create(profile)
	r.sessions.SetCookie(w, id)
	http.Redirect(w, req, r.frontendURL+"/dashboard", http.StatusFound)
}

func parseID(req *http.Request) (domain.RecordID, error) {
	raw := chi.URLParam(req, "id")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidRequest, raw)
	}
	return domain.RecordID(n), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
