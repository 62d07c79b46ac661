package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/wanderreel/wanderreel/internal/drafts"
	"github.com/wanderreel/wanderreel/internal/seed"
	"github.com/wanderreel/wanderreel/internal/stories"
	"github.com/wanderreel/wanderreel/internal/stories/storiesimpl"
	"github.com/wanderreel/wanderreel/internal/store"
	"github.com/wanderreel/wanderreel/internal/uploader"
	"github.com/wanderreel/wanderreel/internal/uploader/uploaderimpl"
	"github.com/wanderreel/wanderreel/pkg/config"
	"github.com/wanderreel/wanderreel/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		func() clockwork.Clock { return clockwork.NewRealClock() },
	),
	seed.Module,
	store.Module,
	drafts.Module,
	fx.Provide(
		func(s store.Store) uploader.Publisher { return s },
		fx.Annotate(
			uploaderimpl.New,
			fx.As(new(uploader.Client)),
		),
		fx.Annotate(
			storiesimpl.New,
			fx.As(new(stories.Sweeper)),
		),
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, st store.Store,
	sweeper stories.Sweeper, upClient uploader.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg)

			unsubscribe := st.Subscribe(func(snap store.Snapshot) {
				log.Debug("Store changed",
					"version", snap.Version,
					"videos", len(snap.Videos),
					"stories", len(snap.Stories),
				)
			})
			_ = unsubscribe // store and app share the process lifetime

			if err := sweeper.ScheduleSweep(ctx); err != nil {
				log.Error("Story sweep scheduling error", "Error", err)
				return err
			}

			cu := st.CurrentUser()
			log.Info("Catalog ready",
				"videos", len(st.Videos()),
				"users", len(st.Users()),
				"current_user", cu.Username,
			)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			upClient.Close()
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
