// Package middleware provides the HTTP middleware chain placed in front of
// the GraphQL endpoint.
package middleware

import "net/http"

type Middleware func(next http.Handler) http.Handler

// Chain wraps h with the given middleware; the first entry ends up outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
