// Package routes defines the route registration contract used to compose
// HTTP handlers from independent resource modules.
package routes

import "net/http"

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}
