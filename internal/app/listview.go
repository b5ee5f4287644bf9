package app

import (
	"strings"
	"sync"

	"hotel_console/internal/domain"
)

// ListView is a filtered projection of a store's items. It holds no copy of
// the data; Visible recomputes from the source on every call.
type ListView[T any] struct {
	source func() []T
	fields func(T) []string

	mu   sync.RWMutex
	term string
}

func NewListView[T any](source func() []T, fields func(T) []string) *ListView[T] {
	return &ListView[T]{source: source, fields: fields}
}

func (v *ListView[T]) SetSearch(term string) {
	v.mu.Lock()
	v.term = term
	v.mu.Unlock()
}

func (v *ListView[T]) Search() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.term
}

func (v *ListView[T]) Visible() []T {
	return Filter(v.source(), v.Search(), v.fields)
}

// Filter keeps items where any searchable field contains term, ignoring
// case. An empty term keeps everything.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	needle := strings.ToLower(term)
	for _, it := range items {
		if needle == "" || matches(fields(it), needle) {
			out = append(out, it)
		}
	}
	return out
}

func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func hotelSearchFields(h domain.Hotel) []string { return []string{h.Name, h.City} }

func userSearchFields(u domain.User) []string {
	return []string{u.Username, u.Name, u.HotelName}
}

func NewHotelListView(s *HotelStore) *ListView[domain.Hotel] {
	return NewListView(s.Items, hotelSearchFields)
}

func NewUserListView(s *UserStore) *ListView[domain.User] {
	return NewListView(s.Items, userSearchFields)
}
