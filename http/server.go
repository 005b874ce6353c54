package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/widget"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds graceful shutdown of the server.
const ShutdownTimeout = 5 * time.Second

// Server serves the facility directory page and its dataset.
//
// The URL fragment cannot reach a server, so the page carries the active
// filter in the "filter" query parameter using the fragment values. Filter
// links submit "select" with a category name; the server applies the
// selection and redirects to the shareable URL for the new state.
type Server struct {
	// Addr is the TCP address to listen on.
	Addr string

	// RateLimit is the allowed requests per second per client.
	// Zero disables rate limiting.
	RateLimit float64

	loader locwidget.DatasetLoader
	logger *slog.Logger
}

// NewServer creates a Server backed by loader.
func NewServer(loader locwidget.DatasetLoader, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		Addr:   ":8080",
		loader: loader,
		logger: logger,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	if s.RateLimit > 0 {
		r.Use(NewClientLimiter(s.RateLimit, int(s.RateLimit)+1).Middleware)
	}

	r.Get("/", s.handleIndex)
	r.With(allowAnyOrigin).Get("/data/locations.json", s.handleDataset)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("server listening", "addr", ln.Addr().String())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	host := &pageHost{fragment: q.Get("filter")}
	wdg := &widget.Widget{Loader: s.loader, Host: host}

	if err := wdg.Init(r.Context()); err != nil {
		s.logger.Error("load dataset", "err", err)
		s.renderPage(w, http.StatusBadGateway, host)
		return
	}

	if sel := q.Get("select"); sel != "" {
		wdg.Select(locwidget.Category(sel))
		http.Redirect(w, r, PageURL(host.fragment), http.StatusSeeOther)
		return
	}

	s.renderPage(w, http.StatusOK, host)
}

func (s *Server) renderPage(w http.ResponseWriter, status int, host *pageHost) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, newPageView(host)); err != nil {
		s.logger.Error("render page", "err", err)
	}
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := s.loader.Load(r.Context())
	if err != nil {
		s.logger.Error("load dataset", "err", err)
		http.Error(w, locwidget.LoadErrorMessage, http.StatusBadGateway)
		return
	}

	body, err := json.Marshal(ds)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(begin),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// allowAnyOrigin lets widgets embedded on other sites read the dataset.
func allowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		next.ServeHTTP(w, r)
	})
}

// PageURL returns the shareable page URL for fragment.
func PageURL(fragment string) string {
	if fragment == "" {
		return "/"
	}
	return "/?filter=" + url.QueryEscape(fragment) + "#" + fragment
}
