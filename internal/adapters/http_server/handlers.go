package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_console/internal/app"
)

// Handlers expose one console over HTTP for local tooling.
type Handlers struct{ C *app.Console }

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/auth/login", h.login)
	s.mux.Post("/auth/logout", h.logout)
	s.mux.Group(func(r chi.Router) {
		r.Use(RequireSession(h.C))
		r.Get("/v1/me", h.me)
		r.Get("/v1/dashboard", h.dashboard)
		r.Get("/v1/hotels", h.listHotels)
		r.Get("/v1/users", h.listUsers)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached writes v as JSON with a weak ETag, or 304 when the client
// already holds that version.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in loginBody
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected JSON with email and password")
		return
	}
	if errs := app.ValidateLogin(in.Email, in.Password); len(errs) > 0 {
		writeProblemBody(w, problem{Type: "about:blank", Title: "Validation Failed", Status: http.StatusUnprocessableEntity, Errors: errs})
		return
	}
	if !h.C.Session.Login(r.Context(), in.Email, in.Password) {
		writeProblem(w, http.StatusUnauthorized, "Login Failed", "credentials were rejected")
		return
	}
	writeJSON(w, http.StatusOK, h.C.Session.User())
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.C.Session.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.C.Session.User())
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	st, err := h.C.Dashboard.Refresh(r.Context())
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Backend Error", err.Error())
		return
	}
	writeCached(w, r, st)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	if _, err := h.C.Hotels.Load(r.Context()); err != nil {
		writeProblem(w, http.StatusBadGateway, "Backend Error", err.Error())
		return
	}
	v := app.NewHotelListView(h.C.Hotels)
	v.SetSearch(r.URL.Query().Get("q"))
	writeCached(w, r, v.Visible())
}

func (h *Handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	if _, err := h.C.Users.Load(r.Context()); err != nil {
		writeProblem(w, http.StatusBadGateway, "Backend Error", err.Error())
		return
	}
	v := app.NewUserListView(h.C.Users)
	v.SetSearch(r.URL.Query().Get("q"))
	writeCached(w, r, v.Visible())
}
