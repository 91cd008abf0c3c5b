// Package httpserver wraps net/http with graceful shutdown, timeouts from
// configuration, and liveness/readiness handlers.
//
// Run blocks until the context is canceled or SIGINT/SIGTERM arrives, then
// calls http.Server.Shutdown with the configured deadline. Failures are
// joined with the ErrStart and ErrShutdown sentinels.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
package httpserver
