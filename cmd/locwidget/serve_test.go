package main_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/locwidget"
	main "github.com/fwojciec/locwidget/cmd/locwidget"
	"github.com/fwojciec/locwidget/mock"
	"github.com/stretchr/testify/assert"
)

func newServeDeps() *main.Dependencies {
	cfg := locwidget.DefaultConfig()
	cfg.RateLimit = 1
	return &main.Dependencies{
		Ctx:    context.Background(),
		Config: cfg,
		Loader: &mock.DatasetLoader{
			LoadFn: func(_ context.Context) (*locwidget.Dataset, error) {
				return locwidget.NewDataset(nil), nil
			},
		},
	}
}

func healthCodes(h http.Handler, n int) []int {
	codes := make([]int, 0, n)
	for range n {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		codes = append(codes, rec.Code)
	}
	return codes
}

func TestServeCmd_NewServer(t *testing.T) {
	t.Parallel()

	t.Run("falls back to configured listen address and rate limit", func(t *testing.T) {
		t.Parallel()

		s := (&main.ServeCmd{}).NewServer(newServeDeps())

		assert.Equal(t, locwidget.DefaultConfig().Listen, s.Addr)
		assert.Equal(t, 1.0, s.RateLimit)
		assert.Contains(t, healthCodes(s.Handler(), 5), http.StatusTooManyRequests)
	})

	t.Run("flags override configuration", func(t *testing.T) {
		t.Parallel()

		s := (&main.ServeCmd{Listen: ":9999", RateLimit: 50}).NewServer(newServeDeps())

		assert.Equal(t, ":9999", s.Addr)
		assert.Equal(t, 50.0, s.RateLimit)
	})

	t.Run("no-rate-limit disables limiting", func(t *testing.T) {
		t.Parallel()

		s := (&main.ServeCmd{NoRateLimit: true}).NewServer(newServeDeps())

		assert.Zero(t, s.RateLimit)
		for _, code := range healthCodes(s.Handler(), 10) {
			assert.Equal(t, http.StatusOK, code)
		}
	})
}
