// Package ctxhelper keeps the per-call values of the club API inside a context
package ctxhelper

import (
	"github.com/derWhity/greentable/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ctxKey string

const (
	keySession = ctxKey("session")
	keyUser    = ctxKey("user")
	keyLogger  = ctxKey("logger")
)

// WithLogger returns a copy of ctx carrying the given logger
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// WithSession returns a copy of ctx carrying the admin session and its user
func WithSession(ctx context.Context, sess models.Session, user models.User) context.Context {
	ctx = context.WithValue(ctx, keySession, sess)
	return context.WithValue(ctx, keyUser, user)
}

// Session returns the admin session of the current call or nil for anonymous visitors
func Session(ctx context.Context) *models.Session {
	if sess, ok := ctx.Value(keySession).(models.Session); ok {
		return &sess
	}
	return nil
}

// User returns the logged-in admin of the current call, if any
func User(ctx context.Context) *models.User {
	if usr, ok := ctx.Value(keyUser).(models.User); ok {
		return &usr
	}
	return nil
}

// Logger returns the logger from the current context. If no logger is available, it panics
func Logger(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(keyLogger).(*logrus.Entry); ok {
		return logger
	}
	panic("No logger in context")
}
