// internal/models/session.go
package models

import "strings"

// Role identifies the kind of account a session belongs to. Each role is
// entitled to a disjoint set of storage namespaces.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// Session is the single logged-in user record. Its presence in storage
// means "logged in"; at most one session exists at a time.
type Session struct {
	Email     string `json:"email"`
	Role      Role   `json:"userType"`
	LoginDate string `json:"loginDate"` // RFC3339
	Name      string `json:"name"`
}

// DisplayName derives the session name from the identity: the local part
// of the email before any "@".
func DisplayName(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
