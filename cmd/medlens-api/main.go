// @title         MedLens API
// @version       0.1.0
// @description   Read only analytics endpoints over the Telegram medical warehouse

package main

import (
	"context"

	"medlens/internal/platform/config"
	"medlens/internal/platform/logger"
	phttp "medlens/internal/platform/net/http"
	"medlens/internal/platform/store"

	"medlens/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")  // pgCfg lives under SERVICE_PGSQL_*
	rdsCfg := root.Prefix("SERVICE_REDIS_") // rdsCfg lives under SERVICE_REDIS_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres + optional redis cache)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "medlens-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			RDS: store.RedisConfig{
				Enabled: rdsCfg.MayBool("ENABLED", true),
				Addr:    rdsCfg.MayString("ADDR", "localhost:6379"),
				DB:      rdsCfg.MayInt("DB", 0),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
