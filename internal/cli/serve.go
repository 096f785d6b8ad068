package cli

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/paperpress/daybook/pkg/cache"
	"github.com/paperpress/daybook/pkg/compose"
	"github.com/paperpress/daybook/pkg/layout"
	"github.com/paperpress/daybook/pkg/sink"
)

// serveCommand creates the serve command: a small HTTP server that
// composes diaries on demand.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		cacheOpts cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated diaries over HTTP",
		Long: `Serve starts an HTTP server composing diary PDFs on demand.

  GET /healthz        liveness probe
  GET /diary/{year}   the diary PDF for that year

The diary endpoint accepts ?test=1 to compose the reduced test document
and ?offline=1 to skip content fetching. Content sources share the same
cache as the generate command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := newCache(ctx, cacheOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           c.newRouter(store),
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext:       func(net.Listener) context.Context { return ctx },
			}

			c.Logger.Info("listening", "addr", addr)
			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cacheOpts.register(cmd)
	return cmd
}

// newRouter builds the chi router for the diary server.
func (c *CLI) newRouter(store cache.Cache) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/diary/{year}", func(w http.ResponseWriter, req *http.Request) {
		year, err := strconv.Atoi(chi.URLParam(req, "year"))
		if err != nil || year < 1 {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		testMode := req.URL.Query().Get("test") == "1"
		offline := req.URL.Query().Get("offline") == "1"

		logger := loggerFromContext(req.Context())
		track := newProgress(logger)

		tune := compose.DefaultTuning()
		pdf := sink.NewPDF(layout.A4Page(tune.Margin()))
		gen := &compose.Generator{
			Composer: compose.NewComposer(pdf, tune),
			Sources:  newSources(store, offline),
			Logger:   logger,
			TestMode: testMode,
		}

		if err := gen.Run(req.Context(), year); err != nil {
			logger.Error("generation failed", "err", err)
			http.Error(w, "generation failed", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			logger.Error("serialization failed", "err", err)
			http.Error(w, "serialization failed", http.StatusInternalServerError)
			return
		}

		track.done("Composed diary")
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+strconv.Itoa(year)+`_Diary.pdf"`)
		w.Write(buf.Bytes())
	})

	return r
}

// requestLogger attaches a per-request logger carrying a request ID and
// logs request completion.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		reqID := uuid.NewString()[:8]
		logger := c.Logger.With("request", reqID)

		start := time.Now()
		next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), logger)))
		logger.Info("request served",
			"method", req.Method,
			"path", req.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond))
	})
}
