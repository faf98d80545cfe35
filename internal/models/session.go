package models

import (
	"time"
)

// Session contains data about an active admin session
type Session struct {
	// The session ID (the API key that identifies this session)
	ID string
	// The ID of the user that has logged-in for this session
	UserID uint
	// When will the session expire?
	ExpiresAt time.Time
}

// Expired checks if the session has already expired
func (s *Session) Expired() bool {
	return s.ExpiresAt.Before(time.Now())
}

// AdminPermissions lists what a logged-in admin may do. All admins share this set
var AdminPermissions = []string{PermScheduleManage, PermContentManage}

// UserCan checks if the user in this session has the given permission
func (s *Session) UserCan(permission string) bool {
	for _, p := range AdminPermissions {
		if p == permission {
			return true
		}
	}
	return false
}
