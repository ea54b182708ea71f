package session

import "time"

// Data is the identity held by a server-side session.
type Data struct {
	UserID    string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Store persists sessions by id. Expired sessions behave as absent.
type Store interface {
	Get(sid string) (Data, bool, error)
	Set(sid string, data Data, expiresAt time.Time) error
	Destroy(sid string) error
}
