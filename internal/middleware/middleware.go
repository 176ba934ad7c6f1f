// Package middleware provides the HTTP middleware stack: CORS, request
// logging, request IDs, and trailing-slash normalization.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System accumulates middleware and applies them to a terminal handler.
type System interface {
	Use(mw Middleware)
	Wrap(h http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{stack: make([]Middleware, 0)}
}

// Use appends a middleware. Middleware run in registration order: the first
// registered is the outermost wrapper.
func (s *system) Use(mw Middleware) {
	s.stack = append(s.stack, mw)
}

// Wrap applies the registered middleware around the terminal handler.
func (s *system) Wrap(h http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		h = s.stack[i](h)
	}
	return h
}
