package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BubsLB/airdropbreakdown/controller/middleware"
	"github.com/BubsLB/airdropbreakdown/controller/respond"
	"github.com/BubsLB/airdropbreakdown/model"
	"github.com/BubsLB/airdropbreakdown/service/dataset_service"
	"github.com/BubsLB/airdropbreakdown/service/eligibility_service"

	"github.com/gin-gonic/gin"
)

const (
	eligibleAddress = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	unknownAddress  = "0x0000000000000000000000000000000000000001"
)

type fixedSource struct {
	snapshot *model.Snapshot
	err      error
}

func (s *fixedSource) Name() string { return "fixed" }

func (s *fixedSource) Load(ctx context.Context) (*model.Snapshot, error) {
	return s.snapshot, s.err
}

type eligibilityEnvelope struct {
	Code    int                         `json:"code"`
	Message string                      `json:"message"`
	Data    respond.EligibilityResponse `json:"data"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, source dataset_service.Source, load bool, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()

	loader := dataset_service.NewLoader(source)
	if load {
		_ = loader.Load(context.Background())
	}

	policy, err := eligibility_service.PolicyForLayout(model.LayoutSingle, nil, nil)
	if err != nil {
		t.Fatalf("PolicyForLayout failed: %v", err)
	}
	checkService := eligibility_service.NewCheckService(eligibility_service.NewResolver(policy, loader), 0)
	return SetupRouter(checkService, loader, limiter)
}

func readySource() *fixedSource {
	return &fixedSource{snapshot: &model.Snapshot{
		Layout: model.LayoutSingle,
		Airdrop: model.AirdropDataset{
			eligibleAddress: {Total: 500, Campaigns: []model.CampaignEntry{{Name: "Alpha", Tokens: 500}}},
		},
	}}
}

func doRequest(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) eligibilityEnvelope {
	t.Helper()
	var env eligibilityEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func TestGetEligibility_Eligible(t *testing.T) {
	r := newTestRouter(t, readySource(), true, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/eligibility/0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	env := decode(t, w)
	if env.Code != respond.CodeSuccess || env.Data.Status != "eligible" || !env.Data.Eligible {
		t.Errorf("Unexpected response: %+v", env)
	}
	if env.Data.Total != 500 || len(env.Data.Campaigns) != 1 || env.Data.Campaigns[0].Name != "Alpha" {
		t.Errorf("Unexpected breakdown: %+v", env.Data)
	}
	if env.Data.DisplayAddress != "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed" {
		t.Errorf("Expected checksum display address, got %s", env.Data.DisplayAddress)
	}
	if env.Data.ShortAddress != "0x5aA...eAed" {
		t.Errorf("Expected short address, got %s", env.Data.ShortAddress)
	}
}

func TestPostCheck_NotEligible(t *testing.T) {
	r := newTestRouter(t, readySource(), true, nil)

	w := doRequest(r, http.MethodPost, "/api/v1/eligibility/check", []byte(`{"address": " `+unknownAddress+` "}`))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	env := decode(t, w)
	if env.Data.Status != "not_eligible" || env.Data.Eligible || env.Data.Total != 0 {
		t.Errorf("Unexpected response: %+v", env.Data)
	}
	if env.Data.Campaigns == nil {
		t.Error("Expected empty campaigns list, got null")
	}
}

func TestPostCheck_InvalidInput(t *testing.T) {
	r := newTestRouter(t, readySource(), true, nil)

	w := doRequest(r, http.MethodPost, "/api/v1/eligibility/check", []byte(`{"address": ""}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if env := decode(t, w); env.Message != eligibility_service.MessageEmptyInput {
		t.Errorf("Expected %q, got %q", eligibility_service.MessageEmptyInput, env.Message)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/eligibility/not-an-address", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	env := decode(t, w)
	if env.Code != respond.CodeInvalidParam || env.Data.Status != "invalid_input" {
		t.Errorf("Unexpected response: %+v", env)
	}
	if env.Data.DisplayAddress != "" || env.Data.ShortAddress != "" {
		t.Errorf("Expected no display form for unrecognised input, got %q / %q", env.Data.DisplayAddress, env.Data.ShortAddress)
	}

	w = doRequest(r, http.MethodPost, "/api/v1/eligibility/check", []byte(`{`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", w.Code)
	}
}

func TestGetEligibility_DataNotReady(t *testing.T) {
	r := newTestRouter(t, readySource(), false, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/eligibility/"+eligibleAddress, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", w.Code)
	}

	env := decode(t, w)
	if env.Data.Status != "data_not_ready" || env.Message != eligibility_service.MessageDataNotReady {
		t.Errorf("Unexpected response: %+v", env)
	}
}

func TestGetEligibility_LoadFailed(t *testing.T) {
	r := newTestRouter(t, &fixedSource{err: errors.New("status 500")}, true, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/eligibility/"+eligibleAddress, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", w.Code)
	}

	env := decode(t, w)
	if env.Data.Status != "load_failed" || strings.Contains(env.Message, "status 500") {
		t.Errorf("Expected generic load failure, got %+v", env)
	}
}

func TestListSchemesAndStatus(t *testing.T) {
	r := newTestRouter(t, readySource(), true, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/schemes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var schemes struct {
		Data []respond.SchemeResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &schemes); err != nil {
		t.Fatalf("Failed to decode schemes: %v", err)
	}
	if len(schemes.Data) != 1 || schemes.Data[0].Name != "evm" {
		t.Errorf("Unexpected schemes: %+v", schemes.Data)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/status", nil)
	var status struct {
		Data respond.DatasetStatusResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("Failed to decode status: %v", err)
	}
	if status.Data.State != "ready" || status.Data.Records != 1 || status.Data.Source != "fixed" {
		t.Errorf("Unexpected status: %+v", status.Data)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t, readySource(), true, nil)

	if w := doRequest(r, http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200 from /health, got %d", w.Code)
	}

	doRequest(r, http.MethodGet, "/api/v1/eligibility/"+eligibleAddress, nil)
	w := doRequest(r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /metrics, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "airdrop_checks_total") {
		t.Error("Expected airdrop_checks_total in metrics output")
	}
}

func TestRateLimit(t *testing.T) {
	r := newTestRouter(t, readySource(), true, middleware.NewRateLimiter(0.001, 1, 0))

	if w := doRequest(r, http.MethodGet, "/api/v1/eligibility/"+eligibleAddress, nil); w.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/v1/eligibility/"+eligibleAddress, nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", w.Code)
	}

	// other routes are not limited
	if w := doRequest(r, http.MethodGet, "/api/v1/status", nil); w.Code != http.StatusOK {
		t.Errorf("Expected status route to stay available, got %d", w.Code)
	}
}

func TestSwagger(t *testing.T) {
	r := newTestRouter(t, readySource(), false, nil)

	w := doRequest(r, http.MethodGet, "/swagger/index.html", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from swagger index, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/swagger/doc.json", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from swagger doc, got %d", w.Code)
	}
	for _, path := range []string{"/eligibility/check", "/eligibility/{address}", "/schemes", "/status"} {
		if !strings.Contains(w.Body.String(), path) {
			t.Errorf("Expected %s in swagger doc", path)
		}
	}
}

func TestNoRoute(t *testing.T) {
	r := newTestRouter(t, readySource(), true, nil)

	w := doRequest(r, http.MethodGet, "/api/v2/eligibility/"+eligibleAddress, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
	if env := decode(t, w); env.Code != respond.CodeNotFound {
		t.Errorf("Expected code %d, got %d", respond.CodeNotFound, env.Code)
	}
}

func TestRecovery(t *testing.T) {
	r := newTestRouter(t, readySource(), true, nil)
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := doRequest(r, http.MethodGet, "/panic", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}
	env := decode(t, w)
	if env.Code != respond.CodeServerError || strings.Contains(env.Message, "boom") {
		t.Errorf("Unexpected response: %+v", env)
	}
}
