package cli

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/catalog"
	"github.com/eloquentlyAzaria/videosystem-concept/pkg/errors"
	"github.com/eloquentlyAzaria/videosystem-concept/pkg/thumb"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	config string
	seed   int64
	count  int
	addr   string
}

// serveCommand creates the HTTP preview server command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and thumbnails over HTTP",
		Long:  "Start a preview server exposing the generated catalog as JSON and the composited cover thumbnails as PNG images.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			flagOrConfig(cmd, "seed", &opts.seed, cfg.Catalog.Seed)
			flagOrConfig(cmd, "count", &opts.count, cfg.Catalog.Count)
			flagOrConfig(cmd, "addr", &opts.addr, cfg.Server.Addr)
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default scenehop.toml if present)")
	cmd.Flags().Int64Var(&opts.seed, "seed", catalog.DefaultSeed, "catalog generation seed")
	cmd.Flags().IntVar(&opts.count, "count", catalog.DefaultCount, "number of records to generate")
	cmd.Flags().StringVar(&opts.addr, "addr", ":8650", "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	records, err := catalog.Generate(opts.seed, opts.count)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newServeMux(records, thumb.NewDefaultCache(), c),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printSuccess("Serving %d videos on %s", len(records), opts.addr)
	printDetail("GET /videos")
	printDetail("GET /videos/{id}/thumb.png?w=480&h=270&variant=base")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "server on %s", opts.addr)
	}
}

// videoResponse is a catalog record plus the display strings cards show.
type videoResponse struct {
	catalog.VideoRecord
	ViewsLabel string `json:"views_label"`
	AgeLabel   string `json:"age_label"`
	Meta       string `json:"meta"`
}

// newServeMux builds the preview routes over a fixed record list and a
// shared thumbnail cache.
func newServeMux(records []catalog.VideoRecord, cache *thumb.Cache, c *CLI) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(c))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/videos", func(w http.ResponseWriter, req *http.Request) {
		view := records
		if q := req.URL.Query().Get("q"); q != "" {
			view = catalog.Search(records, q)
		}
		out := make([]videoResponse, 0, len(view))
		for _, v := range view {
			out = append(out, videoResponse{
				VideoRecord: v,
				ViewsLabel:  catalog.FormatViews(v.Views),
				AgeLabel:    catalog.FormatAge(v.AgeDays),
				Meta:        catalog.FormatMeta(v),
			})
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Get("/videos/{id}", func(w http.ResponseWriter, req *http.Request) {
		v, ok := catalog.ByID(records, chi.URLParam(req, "id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "video not found"})
			return
		}
		writeJSON(w, http.StatusOK, videoResponse{
			VideoRecord: v,
			ViewsLabel:  catalog.FormatViews(v.Views),
			AgeLabel:    catalog.FormatAge(v.AgeDays),
			Meta:        catalog.FormatMeta(v),
		})
	})

	r.Get("/videos/{id}/thumb.png", func(w http.ResponseWriter, req *http.Request) {
		v, ok := catalog.ByID(records, chi.URLParam(req, "id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "video not found"})
			return
		}

		width := queryInt(req, "w", 480)
		height := queryInt(req, "h", 270)
		clr, err := variantColor(v.Color, req.URL.Query().Get("variant"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errors.UserMessage(err)})
			return
		}

		img, err := cache.Get(v.Title, clr, width, height)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, errors.ErrCodeInvalidSize) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, map[string]string{"error": errors.UserMessage(err)})
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			loggerFromContext(req.Context()).Error("encode thumbnail", "id", v.ID, "err", err)
		}
	})

	return r
}

// variantColor resolves the variant query parameter to a concrete color.
func variantColor(base thumb.RGB, variant string) (thumb.RGB, error) {
	frames := thumb.Variants(base)
	switch variant {
	case "", "base":
		return frames[0], nil
	case "bright":
		return frames[1], nil
	case "dark":
		return frames[2], nil
	default:
		return thumb.RGB{}, errors.New(errors.ErrCodeInvalidInput, "unknown variant %q", variant)
	}
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(req *http.Request, name string, def int) int {
	s := req.URL.Query().Get(name)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs each request with its duration at debug level.
func requestLogger(c *CLI) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ctx := withLogger(req.Context(), c.Logger)
			next.ServeHTTP(w, req.WithContext(ctx))
			c.Logger.Debug("request",
				"method", req.Method,
				"path", req.URL.Path,
				"duration", time.Since(start).Round(time.Millisecond),
			)
		})
	}
}
