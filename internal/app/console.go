package app

import (
	"context"

	"hotel_console/internal/domain"
)

// Backend is everything the console needs from the REST API.
type Backend interface {
	domain.AuthAPI
	Hotels() domain.HotelAPI
	Users() domain.UserAPI
}

// Console wires the session, stores and views around one backend. The
// stores are shared by every view, form and command built from it.
type Console struct {
	Session   *Session
	Hotels    *HotelStore
	Users     *UserStore
	Dashboard *Dashboard

	HotelList *ListView[domain.Hotel]
	UserList  *ListView[domain.User]

	nav domain.Navigator
}

func NewConsole(b Backend, kv domain.KV, n domain.Notifier, nav domain.Navigator) *Console {
	hotels := NewHotelStore(b.Hotels(), n)
	users := NewUserStore(b.Users(), n)
	return &Console{
		Session:   NewSession(b, kv, n, nav),
		Hotels:    hotels,
		Users:     users,
		Dashboard: NewDashboard(hotels, users),
		HotelList: NewHotelListView(hotels),
		UserList:  NewUserListView(users),
		nav:       nav,
	}
}

// Guard builds a protected-view guard navigating through nav, or through
// the console's navigator when nav is nil.
func (c *Console) Guard(nav domain.Navigator) *Guard {
	if nav == nil {
		nav = c.nav
	}
	return NewGuard(c.Session, nav)
}

func (c *Console) HotelForm(mode Mode, id int64, onClose func()) *HotelForm {
	return NewHotelForm(c.Hotels, mode, id, onClose)
}

func (c *Console) UserForm(mode Mode, id int64, onClose func()) *UserForm {
	return NewUserForm(c.Users, mode, id, onClose)
}

func (c *Console) ConfirmHotelDelete(id int64) *DeleteConfirmation {
	return NewDeleteConfirmation(HotelDeleteTitle, HotelDeleteDescription, func(ctx context.Context) bool {
		return c.Hotels.Delete(ctx, id)
	})
}

func (c *Console) ConfirmUserDelete(id int64) *DeleteConfirmation {
	return NewDeleteConfirmation(UserDeleteTitle, UserDeleteDescription, func(ctx context.Context) bool {
		return c.Users.Delete(ctx, id)
	})
}
