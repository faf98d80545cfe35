// Package inmem provides a user repository that works from memory.
package inmem

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos"
)

// UserRepo provides a simple in-memory storage for the admin accounts
type UserRepo struct {
	mu    sync.RWMutex
	users map[uint]models.User
	// The maximum user ID currently in the storage
	maxUserID uint
}

// New creates a new user repository instance
func New() *UserRepo {
	return &UserRepo{
		users: make(map[uint]models.User),
	}
}

// Create creates a new user. Users without an ID get the next free one
func (r *UserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Name == u.Name {
			return fmt.Errorf("Create: A user named %q does already exist", u.Name)
		}
	}
	if u.ID > 0 {
		if _, ok := r.users[u.ID]; ok {
			return fmt.Errorf("Create: A user with the given ID does already exist")
		}
	} else {
		u.ID = r.maxUserID + 1
	}
	if r.maxUserID < u.ID {
		r.maxUserID = u.ID
	}
	r.users[u.ID] = *u
	return nil
}

// Update updates an existing user
func (r *UserRepo) Update(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repos.ErrEntityNotExisting
	}
	r.users[u.ID] = *u
	return nil
}

// Delete removes an existing user from the user storage
func (r *UserRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repos.ErrEntityNotExisting
	}
	delete(r.users, id)
	return nil
}

// GetByID returns the user with the given ID or nil if there is none
func (r *UserRepo) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

// GetByCredentials returns the user which has the given username and password - this is used for login
// Returns nil if the name is unknown or the password does not match
func (r *UserRepo) GetByCredentials(username string, password string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Name == username && u.CheckPassword(password) == nil {
			return &u, nil
		}
	}
	return nil, nil
}

// Find searches for users matching the given search string - supports pagination
func (r *UserRepo) Find(search string, offset uint, limit uint) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	search = strings.ToLower(search)
	ret := []*models.User{}
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), search) || strings.Contains(strings.ToLower(u.FullName), search) {
			found := u
			ret = append(ret, &found)
		}
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	if offset >= uint(len(ret)) {
		return []*models.User{}, nil
	}
	ret = ret[offset:]
	if limit > 0 && limit < uint(len(ret)) {
		ret = ret[:limit]
	}
	return ret, nil
}
