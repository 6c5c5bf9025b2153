package middleware

import (
	"net/http"
)

// Middleware is a function that wraps an http.Handler
type Middleware func(http.Handler) http.Handler

// Chain is an ordered list of middleware. The first middleware added runs
// first.
type Chain []Middleware

// NewChain creates a new middleware chain
func NewChain(middlewares ...Middleware) Chain {
	return Chain(middlewares)
}

// Then wraps handler with every middleware in the chain
func (c Chain) Then(handler http.Handler) http.Handler {
	for i := len(c) - 1; i >= 0; i-- {
		handler = c[i](handler)
	}
	return handler
}

// Append returns a new chain with middlewares added at the end, leaving c
// untouched
func (c Chain) Append(middlewares ...Middleware) Chain {
	out := make(Chain, 0, len(c)+len(middlewares))
	out = append(out, c...)
	return append(out, middlewares...)
}
