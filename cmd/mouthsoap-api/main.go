// Command mouthsoap-api serves the censoring engines over http
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"mouthsoap/internal/platform/config"
	"mouthsoap/internal/platform/httpkit"
	"mouthsoap/internal/platform/logger"

	censorhttp "mouthsoap/internal/services/censor/http"
	censorsvc "mouthsoap/internal/services/censor/service"
	metahttp "mouthsoap/internal/services/meta/http"
)

func main() {
	root := config.New()
	l := logger.Get()

	cens := root.Prefix("CENSOR_")
	svc := censorsvc.New(censorsvc.Options{
		Mask:     cens.MayString("MASK", "*")[0],
		WordFile: cens.MayString("WORDLIST", ""),
	})

	srv := httpkit.NewServer(root.Prefix("API_"))
	censorhttp.Register(srv.Mux(), svc)
	metahttp.Register(srv.Mux())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case <-ctx.Done():
		l.Info().Msg("shutting down")
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
		<-errc
	case err := <-errc:
		if err != nil {
			l.Fatal().Err(err).Msg("server failed")
		}
	}
}
