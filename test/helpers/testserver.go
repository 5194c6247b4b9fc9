package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"kirismor_backend/database"
	"kirismor_backend/internal/app"
	"kirismor_backend/internal/auth"
	"kirismor_backend/internal/config"
	"kirismor_backend/internal/logger"
	"kirismor_backend/pkg/contextkeys"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer runs the full router against a real database. Tests open a
// transaction via BeginTransaction; the wrapper below injects it into
// every request so nothing written during a test survives the rollback.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB

	mu sync.Mutex
	tx *gorm.DB
}

// NewTestServer connects to the database named by DATABASE_URL and mounts
// the application router on an httptest server. Tests are skipped when
// DATABASE_URL is not set.
func NewTestServer(t *testing.T) *TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set, skipping integration tests")
	}

	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	ts := &TestServer{DB: db}

	router := app.SetupRouter(cfg, db)
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tx := ts.currentTx(); tx != nil {
			ctx := context.WithValue(r.Context(), contextkeys.DBContextKey, tx)
			r = r.WithContext(ctx)
		}
		router.ServeHTTP(w, r)
	}))

	return ts
}

func (ts *TestServer) currentTx() *gorm.DB {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.tx
}

// BeginTransaction opens a transaction and routes all subsequent requests
// through it until RollbackTransaction is called.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Failed to begin transaction: %v", tx.Error)
	}

	ts.mu.Lock()
	ts.tx = tx
	ts.mu.Unlock()

	return tx
}

func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	ts.mu.Lock()
	ts.tx = nil
	ts.mu.Unlock()

	if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
		t.Logf("Rollback failed: %v", err)
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// SendRequest performs an HTTP request against the test server and returns
// the response together with its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return res, string(resBody)
}
