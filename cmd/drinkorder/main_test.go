package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/internal/config"
	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/internal/storage/sqlite"
	"github.com/mmynk/drinkorder/pkg/api"
	"github.com/mmynk/drinkorder/pkg/api/apiconnect"
)

// setupServer starts the full handler over a temp database and static dir.
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()

	staticDir := filepath.Join(dir, "static")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		t.Fatalf("failed to create static dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>drinkorder</h1>"), 0o644); err != nil {
		t.Fatalf("failed to write index.html: %v", err)
	}

	store, err := sqlite.New(filepath.Join(dir, "server.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{StaticPath: staticDir, CORSOrigin: "https://example.test", Environment: "test"},
	}
	handler, err := newHandler(cfg, store)
	if err != nil {
		t.Fatalf("newHandler failed: %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func TestHandler_ServesConnectServices(t *testing.T) {
	server := setupServer(t)

	client := apiconnect.NewSiteServiceClient(http.DefaultClient, server.URL)
	resp, err := client.Health(context.Background(), connect.NewRequest(&api.HealthRequest{}))
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if resp.Msg.Status != "healthy" || resp.Msg.Environment != "test" {
		t.Errorf("unexpected health response: %+v", resp.Msg)
	}
}

func TestHandler_Routes(t *testing.T) {
	server := setupServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"index", http.MethodGet, "/", http.StatusOK, "drinkorder"},
		{"client route falls back to index", http.MethodGet, "/orders/abc", http.StatusOK, "drinkorder"},
		{"unknown procedure", http.MethodPost, "/drinkorder.v1.NopeService/Nope", http.StatusNotFound, ""},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "drinkorder_rpc_requests_total"},
	}

	// One RPC so the request counter has a sample.
	client := apiconnect.NewSiteServiceClient(http.DefaultClient, server.URL)
	if _, err := client.Health(context.Background(), connect.NewRequest(&api.HealthRequest{})); err != nil {
		t.Fatalf("Health failed: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, server.URL+tt.path, nil)
			if err != nil {
				t.Fatalf("failed to build request: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status: expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if tt.wantBody != "" && !strings.Contains(string(body), tt.wantBody) {
				t.Errorf("body: expected to contain %q", tt.wantBody)
			}
		})
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	server := setupServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/drinkorder.v1.SiteService/Health", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://example.test" {
		t.Errorf("Access-Control-Allow-Origin: expected https://example.test, got %q", got)
	}
}

func TestCatalogCommands(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "cli.db"))

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetArgs(args)
		if err := root.Execute(); err != nil {
			t.Fatalf("%v failed: %v", args, err)
		}
		return out.String()
	}

	var shown models.Catalog
	if err := json.Unmarshal([]byte(run("catalog", "show")), &shown); err != nil {
		t.Fatalf("catalog show did not print JSON: %v", err)
	}
	if price, ok := shown.ToppingPrice("珍珠"); !ok || price != 10 {
		t.Errorf("珍珠: expected 10, got %d (found %v)", price, ok)
	}

	if out := run("seed"); !strings.Contains(out, "seeded") {
		t.Errorf("seed output: %q", out)
	}
	if out := run("seed"); !strings.Contains(out, "nothing seeded") {
		t.Errorf("second seed output: %q", out)
	}

	var reset models.Catalog
	if err := json.Unmarshal([]byte(run("catalog", "reset")), &reset); err != nil {
		t.Fatalf("catalog reset did not print JSON: %v", err)
	}
	if len(reset.Sizes) != 2 {
		t.Errorf("sizes after reset: expected 2, got %v", reset.Sizes)
	}
}
