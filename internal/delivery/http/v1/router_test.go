package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harsh-gitaccount/orivanta-website/config"
	v1 "github.com/Harsh-gitaccount/orivanta-website/internal/delivery/http/v1"
	"github.com/Harsh-gitaccount/orivanta-website/internal/domain"
	"github.com/Harsh-gitaccount/orivanta-website/internal/usecase"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/email"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/ratelimit"
)

// fakeTransport captures outbound messages, or fails every send
type fakeTransport struct {
	mu      sync.Mutex
	sent    []*domain.OutboundMessage
	sendErr error
}

func (f *fakeTransport) Send(_ context.Context, msg *domain.OutboundMessage) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeTransport) Verify(context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Port:                   "8080",
		CORSOrigins:            []string{"http://localhost:3000"},
		EmailFrom:              "noreply@orivanta.in",
		EmailFromName:          "Orivanta Contact Form",
		EmailTo:                "owner@orivanta.in",
		RateLimitPoints:        5,
		RateLimitWindowSeconds: 900,
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, transport domain.MailTransport, limiter ratelimit.Limiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	composer := email.NewComposer(cfg)
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(composer, transport),
		HealthUC:  usecase.NewHealthUsecase("Orivanta Contact Form API", "1.0.0"),
		Limiter:   limiter,
		Config:    cfg,
	})
}

func postSubmission(router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/contact/submit", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:51234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"firstName": "Jo",
		"lastName":  "Smith",
		"email":     "jo@example.com",
		"subject":   "voice",
		"message":   "I need help automating my customer support calls please.",
	}
}

func TestSubmit_Success(t *testing.T) {
	cfg := testConfig()
	transport := &fakeTransport{}
	router := newTestRouter(t, cfg, transport, ratelimit.NewMemory(5, time.Minute))

	w := postSubmission(router, validBody())

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you for your message! We'll get back to you within 24 hours.", resp.Message)

	require.Len(t, transport.sent, 2)
	assert.Equal(t, "owner@orivanta.in", transport.sent[0].To)
	assert.Contains(t, transport.sent[0].Subject, "Voice AI")
	assert.Equal(t, "jo@example.com", transport.sent[1].To)
}

func TestSubmit_ValidationFailure(t *testing.T) {
	cfg := testConfig()
	transport := &fakeTransport{}
	router := newTestRouter(t, cfg, transport, ratelimit.NewMemory(5, time.Minute))

	body := validBody()
	delete(body, "message")

	w := postSubmission(router, body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool     `json:"success"`
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Contains(t, resp.Errors, "Message must be at least 20 characters")
	assert.Empty(t, transport.sent, "no dispatch should be attempted")
}

func TestSubmit_MalformedJSON(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg, &fakeTransport{}, ratelimit.NewMemory(5, time.Minute))

	req := httptest.NewRequest(http.MethodPost, "/api/contact/submit", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:51234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmit_TransportFailureIsGeneric(t *testing.T) {
	cfg := testConfig()
	transport := &fakeTransport{sendErr: errors.New("dial tcp: smtp-relay.brevo.com refused auth for user secret-login")}
	router := newTestRouter(t, cfg, transport, ratelimit.NewMemory(5, time.Minute))

	w := postSubmission(router, validBody())

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to send message. Please try again or contact us directly.", resp.Message)

	// No transport detail leaks into the response
	assert.NotContains(t, w.Body.String(), "secret-login")
	assert.NotContains(t, w.Body.String(), "dial tcp")
}

func TestSubmit_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPoints = 2
	transport := &fakeTransport{}
	router := newTestRouter(t, cfg, transport, ratelimit.NewMemory(2, 5*time.Second))

	for i := 0; i < 2; i++ {
		w := postSubmission(router, validBody())
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := postSubmission(router, validBody())
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp struct {
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		RetryAfter int    `json:"retryAfter"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Too many requests. Please try again later.", resp.Message)
	assert.GreaterOrEqual(t, resp.RetryAfter, 1)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Only the admitted submissions were dispatched
	assert.Len(t, transport.sent, 4)
}

func TestSubmit_RateLimitKeyedByForwardedForWhenTrusted(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPoints = 1
	cfg.TrustProxy = true
	router := newTestRouter(t, cfg, &fakeTransport{}, ratelimit.NewMemory(1, time.Minute))

	post := func(ip string) int {
		raw, _ := json.Marshal(validBody())
		req := httptest.NewRequest(http.MethodPost, "/api/contact/submit", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", ip)
		req.RemoteAddr = "10.0.0.1:40000" // the proxy
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("198.51.100.1"))
	assert.Equal(t, http.StatusOK, post("198.51.100.2"))
}

func TestHealth(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg, &fakeTransport{}, ratelimit.NewMemory(5, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "Orivanta Contact Form API", resp.Service)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestUnknownRoute(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg, &fakeTransport{}, ratelimit.NewMemory(5, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success            bool     `json:"success"`
		Message            string   `json:"message"`
		AvailableEndpoints []string `json:"availableEndpoints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Endpoint not found", resp.Message)
	assert.Equal(t, []string{"GET /health", "POST /api/contact/submit"}, resp.AvailableEndpoints)
}

func TestCORSPreflight(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg, &fakeTransport{}, ratelimit.NewMemory(5, time.Minute))

	req := httptest.NewRequest(http.MethodOptions, "/api/contact/submit", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/contact/submit", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
