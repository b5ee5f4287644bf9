package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"hotel_console/internal/adapters/observability"
	"hotel_console/internal/domain"
)

// Messages are the operator-facing notification texts of one store.
type Messages struct {
	Created, Updated, Deleted string

	ListFailed, GetFailed                    string
	CreateFailed, UpdateFailed, DeleteFailed string
}

// Store is the client-side authoritative list of one resource type.
//
// Every successful mutation is followed by a full List, so the held list is
// always a server snapshot and never a locally patched copy. Failures never
// escape as errors: they are recorded in Err, notified, and reported as
// false/absent.
type Store[Req, Resp any] struct {
	name   string
	api    domain.ResourceAPI[Req, Resp]
	notify domain.Notifier
	msg    Messages

	mu       sync.RWMutex
	items    []Resp
	inflight int
	err      error
}

func NewStore[Req, Resp any](name string, api domain.ResourceAPI[Req, Resp], n domain.Notifier, msg Messages) *Store[Req, Resp] {
	return &Store[Req, Resp]{name: name, api: api, notify: n, msg: msg, items: []Resp{}}
}

// Items returns a copy of the held list.
func (s *Store[Req, Resp]) Items() []Resp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Resp, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether any operation of this store is in flight.
func (s *Store[Req, Resp]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// Err is the error of the last failed operation, nil after a fresh start.
func (s *Store[Req, Resp]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// List refreshes the held list from the backend. On failure the previous
// list is returned unchanged.
func (s *Store[Req, Resp]) List(ctx context.Context) []Resp {
	items, _ := s.Load(ctx)
	return items
}

// Load is List reporting this call's own failure, which Err may no longer
// hold once other operations of the store have started.
func (s *Store[Req, Resp]) Load(ctx context.Context) ([]Resp, error) {
	s.begin()
	defer s.end()

	items, err := s.api.List(ctx)
	if err != nil {
		s.fail("list", 0, err, s.msg.ListFailed)
		return s.Items(), err
	}
	if items == nil {
		items = []Resp{}
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	observability.ObserveStore(s.name, "list", true)
	log.Debug().Str("resource", s.name).Int("count", len(items)).Msg("list refreshed")
	return s.Items(), nil
}

func (s *Store[Req, Resp]) GetByID(ctx context.Context, id int64) (Resp, bool) {
	s.begin()
	defer s.end()

	var zero Resp
	v, err := s.api.Get(ctx, id)
	if err != nil {
		s.fail("get", id, err, s.msg.GetFailed)
		return zero, false
	}
	observability.ObserveStore(s.name, "get", true)
	return v, true
}

func (s *Store[Req, Resp]) Create(ctx context.Context, payload Req) bool {
	s.begin()
	defer s.end()

	status, err := s.api.Create(ctx, payload)
	return s.settle(ctx, "create", 0, status, http.StatusCreated, err, s.msg.CreateFailed, s.msg.Created)
}

func (s *Store[Req, Resp]) Update(ctx context.Context, id int64, payload Req) bool {
	s.begin()
	defer s.end()

	status, err := s.api.Update(ctx, id, payload)
	return s.settle(ctx, "update", id, status, http.StatusOK, err, s.msg.UpdateFailed, s.msg.Updated)
}

func (s *Store[Req, Resp]) Delete(ctx context.Context, id int64) bool {
	s.begin()
	defer s.end()

	status, err := s.api.Delete(ctx, id)
	return s.settle(ctx, "delete", id, status, http.StatusOK, err, s.msg.DeleteFailed, s.msg.Deleted)
}

// settle finishes a mutation: only the exact expected status counts as
// success, and success re-fetches the list before it is reported.
func (s *Store[Req, Resp]) settle(ctx context.Context, op string, id int64, status, want int, err error, failMsg, okMsg string) bool {
	if err == nil && status != want {
		err = fmt.Errorf("unexpected status %d %s", status, http.StatusText(status))
	}
	if err != nil {
		s.fail(op, id, err, failMsg)
		return false
	}

	s.List(ctx)

	observability.ObserveStore(s.name, op, true)
	log.Info().Str("resource", s.name).Str("op", op).Int64("id", id).Msg("mutation applied")
	if s.notify != nil && okMsg != "" {
		s.notify.Success(okMsg)
	}
	return true
}

func (s *Store[Req, Resp]) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = nil
	s.mu.Unlock()
}

func (s *Store[Req, Resp]) end() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *Store[Req, Resp]) fail(op string, id int64, err error, msg string) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()

	observability.ObserveStore(s.name, op, false)
	log.Warn().Err(err).Str("err_type", observability.LabelErr(err)).Str("resource", s.name).Str("op", op).Int64("id", id).Msg("store operation failed")
	if s.notify != nil {
		s.notify.Error(msg + ": " + err.Error())
	}
}

type (
	HotelStore = Store[domain.HotelRequest, domain.Hotel]
	UserStore  = Store[domain.UserRequest, domain.User]
)

func NewHotelStore(api domain.HotelAPI, n domain.Notifier) *HotelStore {
	return NewStore("hotels", api, n, Messages{
		Created:      "Hotel created successfully.",
		Updated:      "Hotel details updated successfully.",
		Deleted:      "Hotel deleted successfully.",
		ListFailed:   "Hotel list could not be loaded",
		GetFailed:    "Hotel details could not be loaded",
		CreateFailed: "Hotel was not created",
		UpdateFailed: "Hotel details were not updated",
		DeleteFailed: "Hotel was not deleted",
	})
}

func NewUserStore(api domain.UserAPI, n domain.Notifier) *UserStore {
	return NewStore("users", api, n, Messages{
		Created:      "User created successfully.",
		Updated:      "User details updated successfully.",
		Deleted:      "User deleted successfully.",
		ListFailed:   "User list could not be loaded",
		GetFailed:    "User details could not be loaded",
		CreateFailed: "User was not created",
		UpdateFailed: "User details were not updated",
		DeleteFailed: "User was not deleted",
	})
}
