// Package api provides the HTTP API for the application
package api

import (
	"medlens/internal/platform/config"
	"medlens/internal/platform/logger"
	phttp "medlens/internal/platform/net/http"
	"medlens/internal/platform/net/middleware"
	"medlens/internal/platform/store"

	"medlens/internal/modkit"
	"medlens/internal/modkit/httpkit"
	"medlens/internal/modkit/module"
	"medlens/internal/modkit/swaggerkit"

	analyticsmod "medlens/internal/services/api/analytics/module"
	channelsmod "medlens/internal/services/api/channels/module"
	metamod "medlens/internal/services/api/meta/module"
	reportsdom "medlens/internal/services/api/reports/domain"
	reportsmod "medlens/internal/services/api/reports/module"
	searchmod "medlens/internal/services/api/search/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Cache: opt.Store.Cache,
	}

	// the api key gate only exists in production; meta stays open for probes
	var gated []modkit.Option
	if opt.Config.MayString("ENV", "development") == "production" {
		port := httpkit.NewAPIKeyPort(opt.Config.MayCSV("KEYS", nil))
		gated = append(gated, modkit.WithMiddlewares(httpkit.Auth(port)))
	}

	// reports first so its product rollups can feed the channels module
	reports := reportsmod.New(deps, gated...)
	products := module.MustPortsOf[reportsdom.ServicePort](reports)

	channels := channelsmod.New(deps, append([]modkit.Option{
		modkit.WithPorts(channelsmod.Ports{Products: products}),
	}, gated...)...)

	mods := []module.Module{
		metamod.New(deps),
		reports,
		channels,
		searchmod.New(deps, gated...),
		analyticsmod.New(deps, gated...),
	}

	stack := httpkit.CommonStack()
	if opt.Config.MayBool("RATELIMIT", true) {
		stack = append(stack, middleware.RateLimit(middleware.RateLimitOptions{
			RPS:   opt.Config.MayFloat64("RATELIMIT_RPS", 10),
			Burst: opt.Config.MayInt("RATELIMIT_BURST", 0),
		}, phttp.JSON))
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
