package domain

// Account/hotel status literals as the backend emits them.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Hotel struct {
	ID          int64     `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	LegalName   string    `json:"legalName" yaml:"legalName"`
	Country     string    `json:"country" yaml:"country"`
	City        string    `json:"city" yaml:"city"`
	Address     string    `json:"address" yaml:"address"`
	Phone       string    `json:"phone" yaml:"phone"` // always carries the +994 prefix
	Email       string    `json:"email" yaml:"email"`
	Status      string    `json:"status" yaml:"status"` // server-derived
	IsOrderable bool      `json:"isOrderable" yaml:"isOrderable"`
	CreatedAt   Timestamp `json:"createdAt" yaml:"createdAt"`
}

// HotelRequest is the create/update payload for /hotels.
type HotelRequest struct {
	Name        string `json:"name"`
	LegalName   string `json:"legalName"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	IsOrderable *bool  `json:"isOrderable,omitempty"`
}
