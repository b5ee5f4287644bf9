package domain

import "context"

// ResourceAPI is the REST collaborator for one resource type. Mutations
// return the HTTP status of a 2xx response; non-2xx outcomes are errors.
type ResourceAPI[Req, Resp any] interface {
	List(ctx context.Context) ([]Resp, error)
	Get(ctx context.Context, id int64) (Resp, error)
	Create(ctx context.Context, payload Req) (int, error)
	Update(ctx context.Context, id int64, payload Req) (int, error)
	Delete(ctx context.Context, id int64) (int, error)
}

type HotelAPI = ResourceAPI[HotelRequest, Hotel]

type UserAPI = ResourceAPI[UserRequest, User]

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
}

// KV is durable client-side storage for the session (token + identity).
// Get reports false when the key is absent.
type KV interface {
	Get(ctx context.Context, name string) (string, bool, error)
	Set(ctx context.Context, name, value string) error
	Del(ctx context.Context, names ...string) error
}

// Notifier surfaces user-visible messages (the console's toasts).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator moves the operator to another view, e.g. the login entry point.
type Navigator interface {
	Navigate(path string)
}
