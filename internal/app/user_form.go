package app

import (
	"context"

	"hotel_console/internal/domain"
)

// UserFields are the editable inputs of the hotel-admin form. In edit mode
// Password starts as PasswordMask and is only sent when changed.
type UserFields struct {
	Username      string `json:"username" validate:"required,min=3"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password"`
	Name          string `json:"name" validate:"min=3"`
	HotelID       int64  `json:"hotelId" validate:"gt=0"`
	AccountStatus string `json:"accountStatus" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func userFieldsFrom(u domain.User) UserFields {
	return UserFields{
		Username:      u.Username,
		Email:         u.Email,
		Password:      PasswordField.Inverse(nil),
		Name:          u.Name,
		HotelID:       u.HotelID,
		AccountStatus: u.AccountStatus,
	}
}

func (f UserFields) request() domain.UserRequest {
	return domain.UserRequest{
		Username:      f.Username,
		Email:         f.Email,
		Password:      PasswordField.Forward(f.Password),
		Name:          f.Name,
		HotelID:       f.HotelID,
		AccountStatus: f.AccountStatus,
	}
}

// validateUser applies the schema; the password rule depends on mode.
func validateUser(v UserFields, mode Mode) FieldErrors {
	errs := check(v)
	pw := v.Password
	switch {
	case mode == ModeEdit && (pw == "" || pw == PasswordMask):
		// unchanged, omitted from the payload
	case pw == "":
		errs.add("password", ruleMessage("required", ""))
	case len(pw) < 8:
		errs.add("password", ruleMessage("min", "8"))
	}
	return errs
}

// UserForm is the create/edit controller for hotel-admin accounts.
type UserForm struct {
	lifecycle
	store  *UserStore
	fields UserFields
}

func NewUserForm(store *UserStore, mode Mode, id int64, onClose func()) *UserForm {
	return &UserForm{
		lifecycle: lifecycle{mode: mode, id: id, onClose: onClose},
		store:     store,
	}
}

func (f *UserForm) Open(ctx context.Context) bool {
	f.mu.Lock()
	f.closed = false
	f.gen++
	gen, mode, id := f.gen, f.mode, f.id
	f.fields = UserFields{}
	if mode != ModeEdit {
		f.fields.AccountStatus = domain.StatusActive
	}
	f.mu.Unlock()

	if mode != ModeEdit {
		return true
	}
	if id <= 0 {
		return false
	}
	u, ok := f.store.GetByID(ctx, id)
	if !ok {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return false
	}
	f.fields = userFieldsFrom(u)
	return true
}

func (f *UserForm) Reset(ctx context.Context, mode Mode, id int64) bool {
	f.mu.Lock()
	f.mode, f.id = mode, id
	f.mu.Unlock()
	return f.Open(ctx)
}

func (f *UserForm) Values() UserFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *UserForm) Set(v UserFields) {
	f.mu.Lock()
	f.fields = v
	f.mu.Unlock()
}

func (f *UserForm) Edit(fn func(*UserFields)) {
	f.mu.Lock()
	fn(&f.fields)
	f.mu.Unlock()
}

func (f *UserForm) Payload() domain.UserRequest {
	return f.Values().request()
}

func (f *UserForm) Submit(ctx context.Context) SubmitResult {
	f.mu.Lock()
	v, mode, id, closed := f.fields, f.mode, f.id, f.closed
	f.mu.Unlock()

	if closed {
		return SubmitResult{Err: ErrFormClosed}
	}
	if errs := validateUser(v, mode); len(errs) > 0 {
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
