package domain

// Identity is the authenticated administrator as returned by the login call
// and persisted between runs.
type Identity struct {
	ID            int64    `json:"id" yaml:"id"`
	Username      string   `json:"username" yaml:"username"`
	Email         string   `json:"email" yaml:"email"`
	Name          string   `json:"name" yaml:"name"`
	AccountStatus string   `json:"accountStatus" yaml:"accountStatus"`
	Roles         []string `json:"roles" yaml:"roles"`
}

// LoginResponse is the body of a successful POST /admin-user.
type LoginResponse struct {
	User        *Identity `json:"user"`
	AccessToken string    `json:"access_token"`
}

// Persisted state key names.
const (
	KeyToken = "token"
	KeyUser  = "user"
)
