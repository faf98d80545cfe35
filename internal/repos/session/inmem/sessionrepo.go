// Package inmem provides a session repository that holds the session data in-memory
package inmem

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/context"

	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/repos"
)

// DefaultTTL is the time a session lasts after it has been used for the last time
const DefaultTTL = 60 * time.Minute

// sessionRequest is a generic session request that can be sent over one of the repo's channels to execute functions
// inside the control goroutine
type sessionRequest struct {
	sessionID string
	userID    uint
	extend    bool
	answer    chan<- sessionResponse
}

// sessionResponse is a generic response to a session request that contains the answer to the request made
type sessionResponse struct {
	session *models.Session
	err     error
}

// SessionRepo is a session repository that stores the session data in-memory
// All sessions are owned by a single control goroutine which is fed over the channels below
type SessionRepo struct {
	ttl time.Duration
	// make is a channel to trigger session creation
	make chan<- sessionRequest
	// get is a channel to request a session by ID (and to extend it optionally)
	get chan<- sessionRequest
	// del is a channel to request a session to be deleted
	del chan<- sessionRequest
	// done is closed as soon as the control goroutine has stopped
	done <-chan struct{}
}

// New creates a new session repository instance. The repository stops working when ctx is cancelled
func New(ctx context.Context, ttl time.Duration) *SessionRepo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := make(chan sessionRequest)
	g := make(chan sessionRequest)
	d := make(chan sessionRequest)
	done := make(chan struct{})
	repo := &SessionRepo{
		ttl:  ttl,
		make: m,
		get:  g,
		del:  d,
		done: done,
	}
	go repo.control(ctx, m, g, d, done)
	return repo
}

// newToken creates a session token from 244 random bits
func newToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// control is the goroutine that owns the session map until the context is done
func (r *SessionRepo) control(
	ctx context.Context,
	make <-chan sessionRequest,
	get <-chan sessionRequest,
	del <-chan sessionRequest,
	done chan<- struct{},
) {
	defer close(done)
	sessions := map[string]*models.Session{}
	// Purge all expired sessions about once a minute
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-make:
			sess := models.Session{
				ID:        newToken(),
				UserID:    req.userID,
				ExpiresAt: time.Now().Add(r.ttl),
			}
			sessions[sess.ID] = &sess
			ret := sess
			req.answer <- sessionResponse{session: &ret}
		case req := <-get:
			sess, ok := sessions[req.sessionID]
			switch {
			case !ok:
				req.answer <- sessionResponse{err: repos.ErrEntityNotExisting}
			case sess.Expired():
				delete(sessions, req.sessionID)
				req.answer <- sessionResponse{err: repos.ErrEntityNotExisting}
			default:
				if req.extend {
					sess.ExpiresAt = time.Now().Add(r.ttl)
				}
				ret := *sess
				req.answer <- sessionResponse{session: &ret}
			}
		case req := <-del:
			delete(sessions, req.sessionID)
			req.answer <- sessionResponse{}
		case <-ticker.C:
			for key, sess := range sessions {
				if sess.Expired() {
					delete(sessions, key)
				}
			}
		}
	}
}

// send hands the request over to the control goroutine and waits for its answer
func (r *SessionRepo) send(req sessionRequest, channel chan<- sessionRequest) sessionResponse {
	answer := make(chan sessionResponse, 1)
	req.answer = answer
	select {
	case channel <- req:
	case <-r.done:
		return sessionResponse{err: repos.ErrEntityNotExisting}
	}
	return <-answer
}

// CreateFor creates a new session for the given user ID
func (r *SessionRepo) CreateFor(userID uint) (*models.Session, error) {
	resp := r.send(sessionRequest{userID: userID}, r.make)
	if resp.err != nil {
		return nil, resp.err
	}
	return resp.session, nil
}

// GetByID returns the session associated with the given session ID and extends it's expiry if requested
func (r *SessionRepo) GetByID(sessionID string, extend bool) (*models.Session, error) {
	resp := r.send(sessionRequest{sessionID: sessionID, extend: extend}, r.get)
	if resp.err != nil {
		return nil, resp.err
	}
	return resp.session, nil
}

// Delete removes a session from the session storage
func (r *SessionRepo) Delete(sessionID string) error {
	return r.send(sessionRequest{sessionID: sessionID}, r.del).err
}
