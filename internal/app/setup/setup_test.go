package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/config"
	userdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/user"
	"github.com/gin-gonic/gin"
)

func memoryConfig() *config.GigConfig {
	return &config.GigConfig{
		Env:            "local",
		GigDB:          config.GigDB{Storage: "memory"},
		PaymentGateway: config.PaymentGateway{Currency: "INR"},
		Auth:           config.Auth{JWTSecret: "setup-secret", TokenTTL: time.Hour},
		Business: config.Business{
			MinWithdrawal:  "100",
			RateLimitRPS:   50,
			RateLimitBurst: 50,
		},
	}
}

func TestMemoryWiring(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps, err := InitializeDependencies(memoryConfig(), log)
	if err != nil {
		t.Fatal(err)
	}
	defer deps.Close()
	if deps.DB != nil || deps.Publisher != nil {
		t.Fatal("memory mode must not open postgres or kafka")
	}
	ucs, err := InitializeUseCases(deps)
	if err != nil {
		t.Fatal(err)
	}
	h := InitializeHTTP(deps, ucs)

	body, _ := json.Marshal(map[string]string{"name": "Asha", "email": "Asha@Example.com"})
	rec := httptest.NewRecorder()
	h.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", rec.Code, rec.Body)
	}
	var registered struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &registered); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+registered.Token)
	rec = httptest.NewRecorder()
	h.Engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "asha@example.com") {
		t.Fatalf("me: %d %s", rec.Code, rec.Body)
	}

	rec = httptest.NewRecorder()
	h.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "gig_tasks_started_total") {
		t.Fatalf("metrics: %d", rec.Code)
	}
}

func TestMemoryStarterGrant(t *testing.T) {
	cfg := memoryConfig()
	cfg.Business.StarterPackageID = "starter"
	deps, err := InitializeDependencies(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	ucs, err := InitializeUseCases(deps)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	user, err := ucs.Users.RegisterVendor(ctx, &userdto.RegisterVendorInput{Name: "Ravi", Email: "ravi@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	status, err := ucs.Quota.GetQuotaStatus(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if status.Grant == nil || status.TasksRemaining != 3 || status.SkipsRemaining != 1 {
		t.Fatalf("starter quota = %+v", status)
	}
}

func TestInvalidMinWithdrawal(t *testing.T) {
	cfg := memoryConfig()
	cfg.Business.MinWithdrawal = "ten"
	deps, err := InitializeDependencies(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := InitializeUseCases(deps); err == nil {
		t.Fatal("expected an error for a non-numeric minimum")
	}
}
