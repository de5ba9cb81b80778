package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/viewmodel"
	"github.com/umputun/gw2tracker/server/mocks"
)

type testDeps struct {
	cfg      *mocks.ConfigProviderMock
	events   *mocks.EventsModelMock
	dungeons *mocks.DungeonsModelMock
	items    *mocks.ItemsModelMock
	settings *mocks.SettingsModelMock
}

func newTestDeps() *testDeps {
	return &testDeps{
		cfg: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
		},
		events:   &mocks.EventsModelMock{},
		dungeons: &mocks.DungeonsModelMock{},
		items:    &mocks.ItemsModelMock{},
		settings: &mocks.SettingsModelMock{},
	}
}

// testServer creates a server instance using the actual New function
func testServer(t *testing.T, deps *testDeps) *Server {
	t.Helper()
	return New(Params{Config: deps.cfg, Events: deps.events, Dungeons: deps.dungeons, Items: deps.items,
		Settings: deps.settings, Version: "test"})
}

func TestServer_New(t *testing.T) {
	deps := newTestDeps()
	srv := New(Params{Config: deps.cfg, Events: deps.events, Version: "1.0.0", Debug: true})
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.True(t, srv.debug)
	assert.Equal(t, context.Background(), srv.backgroundCtx())
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	deps := newTestDeps()
	deps.cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}
	srv := testServer(t, deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	assert.Equal(t, ctx, srv.backgroundCtx(), "jobs bound to run context")

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/metrics", port))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server didn't stop")
	}
}

func TestServer_statusHandler(t *testing.T) {
	deps := newTestDeps()
	reset := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	deps.events.NextResetFunc = func() time.Time { return reset }
	deps.items.LoadedFunc = func() (domain.Locale, int) { return "de", 1234 }
	deps.items.ProgressFunc = func() viewmodel.Progress { return viewmodel.Progress{} }
	srv := testServer(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "gw2tracker", w.Header().Get("App-Name"))
	body := w.Body.String()
	assert.Contains(t, body, `"version":"test"`)
	assert.Contains(t, body, `"next_reset":"2024-05-11T00:00:00Z"`)
	assert.Contains(t, body, `"locale":"de"`)
	assert.Contains(t, body, `"count":1234`)
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	renderError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}

func TestServer_SizeLimit(t *testing.T) {
	deps := newTestDeps()
	srv := testServer(t, deps)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(strings.Repeat("x", 128*1024)))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, deps.settings.UpdateCalls())
}
