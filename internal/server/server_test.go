package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"menu-engine/internal/generator"
	"menu-engine/internal/logger"
	"menu-engine/internal/metrics"
	"menu-engine/internal/notification"
	"menu-engine/internal/testutil"
	"menu-engine/internal/week"
)

const secret = "cron-secret"

type fakeRunner struct {
	calls []generator.Request
	err   error
}

func (f *fakeRunner) Run(_ context.Context, req generator.Request) (*generator.Report, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return &generator.Report{Window: week.Resolve(time.Now(), req.Override), Result: &generator.BatchResult{}}, nil
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newTestRouter(runner *fakeRunner, production, allowManual bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{
		CronSecret:         secret,
		Production:         production,
		AllowManualTrigger: allowManual,
		Log:                logger.Nop(),
		GenerateHandler:    NewGenerateHandler(runner, logger.Nop()),
		HealthHandler:      NewHealthHandler(okPinger{}, ""),
	})
}

func do(r http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateAuth(t *testing.T) {
	runner := &fakeRunner{}
	r := newTestRouter(runner, false, false)

	for name, token := range map[string]string{"Missing": "", "Wrong": "nope"} {
		t.Run(name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/weekly-menus/generate", token)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("Expected 401, got %d", w.Code)
			}
		})
	}
	if len(runner.calls) != 0 {
		t.Errorf("Expected nothing executed, got %d runs", len(runner.calls))
	}
}

func TestGenerateQuery(t *testing.T) {
	t.Run("OverrideAndForce", func(t *testing.T) {
		runner := &fakeRunner{}
		r := newTestRouter(runner, false, false)
		w := do(r, http.MethodPost, "/api/weekly-menus/generate?week_start=2026-10-19&force_regenerate=true", secret)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if len(runner.calls) != 1 || !runner.calls[0].Force {
			t.Fatalf("Expected one forced run, got %+v", runner.calls)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Bad JSON: %v", err)
		}
		if resp["week_start"] != "2026-10-19" || resp["week_end"] != "2026-10-25" {
			t.Errorf("Unexpected window: %v..%v", resp["week_start"], resp["week_end"])
		}
		if _, ok := resp["results"].([]any); !ok {
			t.Errorf("Expected results array, got %v", resp["results"])
		}
		if _, ok := resp["notification_results"].([]any); !ok {
			t.Errorf("Expected notification_results array, got %v", resp["notification_results"])
		}
	})

	t.Run("MalformedDate", func(t *testing.T) {
		runner := &fakeRunner{}
		r := newTestRouter(runner, false, false)
		w := do(r, http.MethodPost, "/api/weekly-menus/generate?week_start=19-10-2026", secret)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
		if len(runner.calls) != 0 {
			t.Error("Expected no run on bad input")
		}
	})

	t.Run("BatchError", func(t *testing.T) {
		r := newTestRouter(&fakeRunner{err: errors.New("db gone")}, false, false)
		w := do(r, http.MethodPost, "/api/weekly-menus/generate", secret)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("Expected 500, got %d", w.Code)
		}
		var env ErrorEnvelope
		_ = json.Unmarshal(w.Body.Bytes(), &env)
		if env.Error.Code != "batch_failed" {
			t.Errorf("Unexpected error envelope: %+v", env)
		}
	})
}

func TestManualTrigger(t *testing.T) {
	t.Run("ForbiddenInProduction", func(t *testing.T) {
		runner := &fakeRunner{}
		w := do(newTestRouter(runner, true, false), http.MethodGet, "/api/weekly-menus/generate", secret)
		if w.Code != http.StatusForbidden {
			t.Fatalf("Expected 403, got %d", w.Code)
		}
		if len(runner.calls) != 0 {
			t.Error("Expected no run")
		}
	})

	t.Run("AllowedWithFlag", func(t *testing.T) {
		w := do(newTestRouter(&fakeRunner{}, true, true), http.MethodGet, "/api/weekly-menus/generate", secret)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("AllowedOutsideProduction", func(t *testing.T) {
		w := do(newTestRouter(&fakeRunner{}, false, false), http.MethodGet, "/api/weekly-menus/generate", secret)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("POSTNotGuarded", func(t *testing.T) {
		w := do(newTestRouter(&fakeRunner{}, true, false), http.MethodPost, "/api/weekly-menus/generate", secret)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
	})
}

type recordingDeliverer struct{}

func (recordingDeliverer) Deliver(context.Context, notification.Recipient, notification.Delivery) error {
	return nil
}

func (recordingDeliverer) Channel() string { return "test" }

func TestGenerateAgainstDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	userID := testutil.CreateUser(t, db, "Ana", "client")
	testutil.CreateIndividualSubscription(t, db, userID, 1)
	testutil.CreateMeal(t, db, testutil.MealSeed{Name: "Bowl", Type: "lunch", Calories: 500})

	r := NewRouter(RouterConfig{
		CronSecret:      secret,
		Log:             logger.Nop(),
		GenerateHandler: NewGenerateHandler(generator.NewRunnerFromDB(db, recordingDeliverer{}, logger.Nop()), logger.Nop()),
		RunsHandler:     NewRunsHandler(metrics.NewStore(db)),
	})

	w := do(r, http.MethodPost, "/api/weekly-menus/generate?week_start=2026-10-19", secret)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		TotalGenerated      int `json:"total_generated"`
		NotificationsSent   int `json:"notifications_sent"`
		Results             []map[string]any      `json:"results"`
		NotificationResults []notification.Result `json:"notification_results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad JSON: %v", err)
	}
	if resp.TotalGenerated != 1 || resp.NotificationsSent != 1 || len(resp.Results) != 1 {
		t.Fatalf("Unexpected response: %s", w.Body.String())
	}
	if resp.Results[0]["status"] != "generated" || resp.Results[0]["week_start_date"] != "2026-10-19" {
		t.Errorf("Unexpected result entry: %v", resp.Results[0])
	}

	w = do(r, http.MethodPost, "/api/weekly-menus/generate?week_start=2026-10-19", secret)
	var again struct {
		TotalGenerated int              `json:"total_generated"`
		Results        []map[string]any `json:"results"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &again)
	if again.TotalGenerated != 0 || len(again.Results) != 1 || again.Results[0]["status"] != "skipped" {
		t.Errorf("Expected second trigger to skip, got %s", w.Body.String())
	}

	t.Run("Runs", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/weekly-menus/runs?limit=1", secret)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		var body struct {
			Runs []metrics.GenerationRun `json:"runs"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Runs) != 1 {
			t.Errorf("Expected 1 run, got %d", len(body.Runs))
		}

		if w := do(r, http.MethodGet, "/api/weekly-menus/runs?limit=abc", secret); w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for bad limit, got %d", w.Code)
		}
	})
}

func TestHealth(t *testing.T) {
	w := do(newTestRouter(&fakeRunner{}, false, false), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var h metrics.Health
	if err := json.Unmarshal(w.Body.Bytes(), &h); err != nil || h.Status != "ok" {
		t.Errorf("Unexpected health body %s (%v)", w.Body.String(), err)
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterConfig{
		CronSecret:         secret,
		CORSAllowedOrigins: []string{"https://admin.example.com"},
		Log:                logger.Nop(),
		HealthHandler:      NewHealthHandler(okPinger{}, ""),
	})

	t.Run("AllowedOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://admin.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
			t.Errorf("Expected allowed origin echoed, got %q", got)
		}
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/weekly-menus/generate", nil)
		req.Header.Set("Origin", "https://admin.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204 for preflight, got %d", w.Code)
		}
	})

	t.Run("ForeignOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("Expected 403 for a foreign origin, got %d", w.Code)
		}
	})
}
