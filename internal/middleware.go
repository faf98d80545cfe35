package internal

import (
	"net/http"

	"github.com/derWhity/greentable/internal/ctxhelper"
	"github.com/go-kit/kit/endpoint"
	"golang.org/x/net/context"
)

// EnsureUserLoggedIn is a middleware that checks if there is a valid user session for the current call
func EnsureUserLoggedIn(next endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		user := ctxhelper.User(ctx)
		if user == nil {
			// Nobody logged in
			return nil, ErrNotLoggedIn
		}
		return next(ctx, request)
	}
}

// EnsureUserCan is a middleware that only lets the call pass if the session of the current call carries the given
// permission
func EnsureUserCan(permission string) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return EnsureUserLoggedIn(func(ctx context.Context, request interface{}) (interface{}, error) {
			sess := ctxhelper.Session(ctx)
			if sess == nil || !sess.UserCan(permission) {
				return nil, MakeError(
					http.StatusForbidden,
					ErrCodeForbidden,
					"You are not allowed to do this",
				)
			}
			return next(ctx, request)
		})
	}
}
