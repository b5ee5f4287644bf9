package domain

// User is a hotel-admin account as returned by the backend. The password is
// write-only and never part of a read.
type User struct {
	ID            int64     `json:"id" yaml:"id"`
	Username      string    `json:"username" yaml:"username"`
	Name          string    `json:"name" yaml:"name"`
	Email         string    `json:"email" yaml:"email"`
	AccountStatus string    `json:"accountStatus" yaml:"accountStatus"`
	HotelID       int64     `json:"hotelId" yaml:"hotelId"`
	HotelName     string    `json:"hotelName" yaml:"hotelName"` // denormalized by the server
	CreatedAt     Timestamp `json:"createdAt" yaml:"createdAt"`
}

// UserRequest is the create/update payload for /users. A nil Password means
// the key is omitted from the JSON body entirely.
type UserRequest struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Password      *string `json:"password,omitempty"`
	Name          string  `json:"name"`
	HotelID       int64   `json:"hotelId"`
	AccountStatus string  `json:"accountStatus,omitempty"`
}
