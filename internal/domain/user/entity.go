package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

const DefaultRole = "Student"

// User is keyed by email; email is the tenant identifier for reports and
// saved jobs as well.
type User struct {
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Picture    string    `json:"picture"`
	Role       string    `json:"role"`
	LastLogin  time.Time `json:"last_login"`
	LoginCount int       `json:"login_count"`
}
