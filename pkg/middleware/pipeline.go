package middleware

import (
	"github.com/paragon0107/notive/metal/env"
	"github.com/paragon0107/notive/pkg/endpoint"
)

type Pipeline struct {
	Env              *env.Environment
	PublicMiddleware PublicMiddleware
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}

// Public runs h behind the public middleware and then the extra layers.
func (m Pipeline) Public(h endpoint.ApiHandler, extra ...endpoint.Middleware) endpoint.ApiHandler {
	return m.Chain(h, append([]endpoint.Middleware{m.PublicMiddleware.Handle}, extra...)...)
}
