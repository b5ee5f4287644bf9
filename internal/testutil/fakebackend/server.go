// Package fakebackend is an in-memory hotel platform REST API for tests.
package fakebackend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hotel_console/internal/domain"
)

const (
	AdminEmail    = "admin@hotel.az"
	AdminPassword = "admin-password"
)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	token    string
	hotels   map[int64]domain.Hotel
	users    map[int64]domain.User
	next     int64
	fail     map[string]failure
	Requests []Request
}

// Request is what the backend received, kept for assertions.
type Request struct {
	Method string
	Path   string
	Body   map[string]any
}

type failure struct {
	status int
	msg    string
}

func New() *Server {
	s := &Server{
		token:  uuid.NewString(),
		hotels: map[int64]domain.Hotel{},
		users:  map[int64]domain.User{},
		fail:   map[string]failure{},
	}
	r := chi.NewRouter()
	r.Use(s.record)
	r.Post("/admin-user", s.login)
	r.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/hotels", s.listHotels)
		r.Post("/hotels", s.createHotel)
		r.Get("/hotels/{id}", s.getHotel)
		r.Put("/hotels/{id}", s.updateHotel)
		r.Delete("/hotels/{id}", s.deleteHotel)
		r.Get("/users", s.listUsers)
		r.Post("/users", s.createUser)
		r.Get("/users/{id}", s.getUser)
		r.Put("/users/{id}", s.updateUser)
		r.Delete("/users/{id}", s.deleteUser)
	})
	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) Token() string { return s.token }

// Fail makes the next request matching "METHOD /path" answer status with msg.
func (s *Server) Fail(route string, status int, msg string) {
	s.mu.Lock()
	s.fail[route] = failure{status, msg}
	s.mu.Unlock()
}

func (s *Server) SeedHotel(h domain.Hotel) domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	h.ID = s.next
	h.Status = hotelStatus(h.IsOrderable)
	h.CreatedAt = domain.Timestamp{Time: time.Now().UTC()}
	s.hotels[h.ID] = h
	return h
}

func (s *Server) SeedUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	u.ID = s.next
	u.HotelName = s.hotels[u.HotelID].Name
	u.CreatedAt = domain.Timestamp{Time: time.Now().UTC()}
	s.users[u.ID] = u
	return u
}

// Last returns the most recent request with the given method and path.
func (s *Server) Last(method, path string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.Requests) - 1; i >= 0; i-- {
		if r := s.Requests[i]; r.Method == method && r.Path == path {
			return r, true
		}
	}
	return Request{}, false
}

func (s *Server) Count(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.Requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func hotelStatus(orderable bool) string {
	if orderable {
		return domain.StatusActive
	}
	return domain.StatusInactive
}

// ---- middleware ----

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if r.Body != nil && r.ContentLength != 0 {
			raw := json.NewDecoder(r.Body)
			_ = raw.Decode(&body)
			b, _ := json.Marshal(body)
			r.Body = readCloser(b)
		}
		key := r.Method + " " + r.URL.Path

		s.mu.Lock()
		s.Requests = append(s.Requests, Request{Method: r.Method, Path: r.URL.Path, Body: body})
		f, failing := s.fail[key]
		delete(s.fail, key)
		s.mu.Unlock()

		if failing {
			writeJSON(w, f.status, map[string]any{"statusCode": f.status, "message": f.msg})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ---- handlers ----

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid body"})
		return
	}
	if in.Email != AdminEmail || in.Password != AdminPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Invalid email or password"})
		return
	}
	writeJSON(w, http.StatusCreated, domain.LoginResponse{
		User:        &domain.Identity{ID: 1, Username: "admin", Email: AdminEmail, Name: "Platform Admin", AccountStatus: domain.StatusActive, Roles: []string{"ADMIN"}},
		AccessToken: s.token,
	})
}

func (s *Server) listHotels(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := sorted(s.hotels)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getHotel(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	h, ok := s.hotels[id]
	s.mu.Unlock()
	if !ok {
		notFound(w, "Hotel", id)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) createHotel(w http.ResponseWriter, r *http.Request) {
	var in domain.HotelRequest
	if !decode(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": []string{"name should not be empty"}})
		return
	}
	h := s.SeedHotel(applyHotel(domain.Hotel{}, in))
	writeJSON(w, http.StatusCreated, h)
}

func (s *Server) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	var in domain.HotelRequest
	if !decode(w, r, &in) {
		return
	}
	s.mu.Lock()
	h, ok := s.hotels[id]
	if ok {
		h = applyHotel(h, in)
		h.Status = hotelStatus(h.IsOrderable)
		s.hotels[id] = h
	}
	s.mu.Unlock()
	if !ok {
		notFound(w, "Hotel", id)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	_, ok := s.hotels[id]
	delete(s.hotels, id)
	s.mu.Unlock()
	if !ok {
		notFound(w, "Hotel", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := sorted(s.users)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	u, ok := s.users[id]
	s.mu.Unlock()
	if !ok {
		notFound(w, "User", id)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var in domain.UserRequest
	if !decode(w, r, &in) {
		return
	}
	if in.Password == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": []string{"password should not be empty"}})
		return
	}
	u := s.SeedUser(applyUser(domain.User{AccountStatus: domain.StatusActive}, in))
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	var in domain.UserRequest
	if !decode(w, r, &in) {
		return
	}
	s.mu.Lock()
	u, ok := s.users[id]
	if ok {
		u = applyUser(u, in)
		u.HotelName = s.hotels[u.HotelID].Name
		s.users[id] = u
	}
	s.mu.Unlock()
	if !ok {
		notFound(w, "User", id)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	_, ok := s.users[id]
	delete(s.users, id)
	s.mu.Unlock()
	if !ok {
		notFound(w, "User", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func applyHotel(h domain.Hotel, in domain.HotelRequest) domain.Hotel {
	h.Name, h.LegalName, h.Country, h.City = in.Name, in.LegalName, in.Country, in.City
	h.Address, h.Phone, h.Email = in.Address, in.Phone, in.Email
	if in.IsOrderable != nil {
		h.IsOrderable = *in.IsOrderable
	}
	return h
}

func applyUser(u domain.User, in domain.UserRequest) domain.User {
	u.Username, u.Email, u.Name, u.HotelID = in.Username, in.Email, in.Name, in.HotelID
	if in.AccountStatus != "" {
		u.AccountStatus = in.AccountStatus
	}
	return u
}

func sorted[T any](m map[int64]T) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}
