// Package module wires channels into the API using modkit
package module

import (
	"net/http"

	modkit "medlens/internal/modkit"
	"medlens/internal/modkit/httpkit"
	str "medlens/internal/platform/strings"
	channelshttp "medlens/internal/services/api/channels/http"
	channelsrepo "medlens/internal/services/api/channels/repo"
	channelssvc "medlens/internal/services/api/channels/service"
	reportsdom "medlens/internal/services/api/reports/domain"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc channelssvc.Service
}

// Ports declares the injected cross-module port(s) for this module
type Ports struct {
	Products reportsdom.ServicePort
}

// New constructs a channels module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("channels"), modkit.WithPrefix("/channels")}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Products == nil {
		panic("channels module requires the reports Products port")
	}

	repo := channelsrepo.NewPG()
	svc := channelssvc.New(deps.PG, repo, channelssvc.Options{
		Cache:    deps.Cache,
		Products: injected.Products,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptChannelsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		channelshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
