package app

import (
	"context"

	"hotel_console/internal/domain"
)

// HotelFields are the editable inputs of the hotel form. Phone is held
// without the country prefix.
type HotelFields struct {
	Name        string `json:"name" validate:"required"`
	LegalName   string `json:"legalName"`
	Country     string `json:"country" validate:"required"`
	City        string `json:"city" validate:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	IsOrderable *bool  `json:"isOrderable,omitempty"`
}

func hotelFieldsFrom(h domain.Hotel) HotelFields {
	orderable := h.IsOrderable
	return HotelFields{
		Name:        h.Name,
		LegalName:   h.LegalName,
		Country:     h.Country,
		City:        h.City,
		Address:     h.Address,
		Phone:       PhonePrefix.Inverse(h.Phone),
		Email:       h.Email,
		IsOrderable: &orderable,
	}
}

func (f HotelFields) request() domain.HotelRequest {
	return domain.HotelRequest{
		Name:        f.Name,
		LegalName:   f.LegalName,
		Country:     f.Country,
		City:        f.City,
		Address:     f.Address,
		Phone:       PhonePrefix.Forward(f.Phone),
		Email:       f.Email,
		IsOrderable: f.IsOrderable,
	}
}

// HotelForm is the create/edit controller for hotels.
type HotelForm struct {
	lifecycle
	store  *HotelStore
	fields HotelFields
}

func NewHotelForm(store *HotelStore, mode Mode, id int64, onClose func()) *HotelForm {
	return &HotelForm{
		lifecycle: lifecycle{mode: mode, id: id, onClose: onClose},
		store:     store,
	}
}

// Open runs the initial-state logic for the current mode. In edit mode it
// loads the hotel; false means the fetch failed and the form stays blank.
func (f *HotelForm) Open(ctx context.Context) bool {
	f.mu.Lock()
	f.closed = false
	f.gen++
	gen, mode, id := f.gen, f.mode, f.id
	f.fields = HotelFields{}
	f.mu.Unlock()

	if mode != ModeEdit {
		return true
	}
	if id <= 0 {
		return false
	}
	h, ok := f.store.GetByID(ctx, id)
	if !ok {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return false
	}
	f.fields = hotelFieldsFrom(h)
	return true
}

// Reset switches mode and re-runs the initial-state logic.
func (f *HotelForm) Reset(ctx context.Context, mode Mode, id int64) bool {
	f.mu.Lock()
	f.mode, f.id = mode, id
	f.mu.Unlock()
	return f.Open(ctx)
}

func (f *HotelForm) Values() HotelFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *HotelForm) Set(v HotelFields) {
	f.mu.Lock()
	f.fields = v
	f.mu.Unlock()
}

func (f *HotelForm) Edit(fn func(*HotelFields)) {
	f.mu.Lock()
	fn(&f.fields)
	f.mu.Unlock()
}

// Payload is the request the form would submit right now.
func (f *HotelForm) Payload() domain.HotelRequest {
	return f.Values().request()
}

func (f *HotelForm) Submit(ctx context.Context) SubmitResult {
	f.mu.Lock()
	v, mode, id, closed := f.fields, f.mode, f.id, f.closed
	f.mu.Unlock()

	if closed {
		return SubmitResult{Err: ErrFormClosed}
	}
	if errs := check(v); len(errs) > 0 {
		return SubmitResult{Errors: errs}
	}

	var ok bool
	if mode == ModeEdit {
		ok = f.store.Update(ctx, id, v.request())
	} else {
		ok = f.store.Create(ctx, v.request())
	}
	if !ok {
		return SubmitResult{Err: f.store.Err()}
	}
	f.finish()
	return SubmitResult{OK: true}
}
