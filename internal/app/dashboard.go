package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hotel_console/internal/domain"
)

type Stats struct {
	Hotels        int     `json:"hotels" yaml:"hotels"`
	HotelAdmins   int     `json:"hotelAdmins" yaml:"hotelAdmins"`
	ActiveHotels  int     `json:"activeHotels" yaml:"activeHotels"`
	ActivePercent float64 `json:"activePercent" yaml:"activePercent"`
}

// Dashboard summarises the hotel and user stores.
type Dashboard struct {
	hotels *HotelStore
	users  *UserStore
}

func NewDashboard(h *HotelStore, u *UserStore) *Dashboard {
	return &Dashboard{hotels: h, users: u}
}

// Refresh re-lists both stores concurrently and reports the first failure.
// Failures are already notified by the stores.
func (d *Dashboard) Refresh(ctx context.Context) (Stats, error) {
	var g errgroup.Group
	g.Go(func() error { _, err := d.hotels.Load(ctx); return err })
	g.Go(func() error { _, err := d.users.Load(ctx); return err })
	err := g.Wait()
	return d.Stats(), err
}

func (d *Dashboard) Stats() Stats {
	return computeStats(d.hotels.Items(), d.users.Items())
}

func computeStats(hotels []domain.Hotel, users []domain.User) Stats {
	st := Stats{Hotels: len(hotels), HotelAdmins: len(users)}
	for _, h := range hotels {
		if h.Status == domain.StatusActive {
			st.ActiveHotels++
		}
	}
	if st.Hotels > 0 {
		st.ActivePercent = float64(st.ActiveHotels) * 100 / float64(st.Hotels)
	}
	return st
}
