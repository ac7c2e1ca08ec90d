package webhook_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ai-brain/internal/channelconfig"
	msgHTTP "ai-brain/internal/message/delivery/http"
	"ai-brain/internal/message/repository/memory"
	"ai-brain/internal/message/usecase"
	"ai-brain/internal/webhook"
	"ai-brain/pkg/log"
)

const testSecret = "test-signing-secret"

// newTestServer wires the real pipeline: webhook endpoint → usecase →
// in-memory store → messages read API.
func newTestServer(t *testing.T, channels *channelconfig.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := log.Init(log.ZapConfig{Level: "error"})
	repo := memory.New(logger)
	uc := usecase.New(repo, channels, logger)

	wh := webhook.NewHandler(uc, webhook.SecurityConfig{
		SigningSecret:   testSecret,
		RateLimitPerMin: 6000,
	}, "ctx-default", logger)

	engine := gin.New()
	engine.POST("/webhook/slack", wh.HandleSlackWebhook)
	engine.GET("/webhook/slack", wh.HandleWebhookHealth)

	api := engine.Group("/api")
	msgHTTP.RegisterRoutes(api, msgHTTP.New(logger, uc))

	return engine
}

func signedRequest(body string) *http.Request {
	ts := fmt.Sprint(time.Now().Unix())
	signer := webhook.NewSecurityValidator(webhook.SecurityConfig{SigningSecret: testSecret})

	req := httptest.NewRequest(http.MethodPost, "/webhook/slack?context_id=ctx-a", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(webhook.HeaderTimestamp, ts)
	req.Header.Set(webhook.HeaderSignature, signer.Sign([]byte(body), ts))
	return req
}

const eventBody = `{
	"type": "event_callback",
	"team_id": "T123",
	"event": {
		"type": "message",
		"channel": "C1",
		"user": "U1",
		"ts": "1700000000.000100",
		"text": "hi"
	}
}`

func queryTotal(t *testing.T, engine *gin.Engine) (int, []map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/messages?context_id=ctx-a", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("messages query failed: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Messages   []map[string]any `json:"messages"`
		TotalCount int              `json:"totalCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal messages response: %v", err)
	}
	return resp.TotalCount, resp.Messages
}

func TestHandleSlackWebhook(t *testing.T) {
	t.Run("URL Verification Echoes Challenge Before Auth", func(t *testing.T) {
		engine := newTestServer(t, channelconfig.New())

		// No signature headers at all: the handshake must still succeed.
		body := `{"type":"url_verification","challenge":"abc123"}`
		req := httptest.NewRequest(http.MethodPost, "/webhook/slack", strings.NewReader(body))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["challenge"] != "abc123" {
			t.Errorf("challenge not echoed verbatim: %v", resp)
		}
	})

	t.Run("Valid Event Is Stored And Queryable", func(t *testing.T) {
		channels := channelconfig.New()
		channels.Replace("ctx-a", []string{"C1"})
		engine := newTestServer(t, channels)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, signedRequest(eventBody))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var ack map[string]any
		json.Unmarshal(w.Body.Bytes(), &ack)
		if ack["ok"] != true {
			t.Errorf("expected {ok:true} ack, got %v", ack)
		}

		total, msgs := queryTotal(t, engine)
		if total != 1 || len(msgs) != 1 {
			t.Fatalf("expected 1 stored message, got total=%d", total)
		}
		if msgs[0]["text"] != "hi" {
			t.Errorf("stored text mismatch: %v", msgs[0])
		}
	})

	t.Run("Tampered Signature Rejected And Not Stored", func(t *testing.T) {
		engine := newTestServer(t, channelconfig.New())

		req := signedRequest(eventBody)
		req.Header.Set(webhook.HeaderSignature, "v0="+strings.Repeat("00", 32))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		total, _ := queryTotal(t, engine)
		if total != 0 {
			t.Errorf("message stored despite bad signature")
		}
	})

	t.Run("Missing Headers Rejected", func(t *testing.T) {
		engine := newTestServer(t, channelconfig.New())

		req := httptest.NewRequest(http.MethodPost, "/webhook/slack", strings.NewReader(eventBody))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for missing headers, got %d", w.Code)
		}
	})

	t.Run("Duplicate Delivery Counted Once", func(t *testing.T) {
		engine := newTestServer(t, channelconfig.New())

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, signedRequest(eventBody))
			if w.Code != http.StatusOK {
				t.Fatalf("delivery %d: expected 200, got %d", i, w.Code)
			}
		}

		total, _ := queryTotal(t, engine)
		if total != 1 {
			t.Errorf("expected totalCount 1 after replay, got %d", total)
		}
	})

	t.Run("Malformed Body Returns 500", func(t *testing.T) {
		engine := newTestServer(t, channelconfig.New())

		req := httptest.NewRequest(http.MethodPost, "/webhook/slack", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500 for malformed payload, got %d", w.Code)
		}
	})

	t.Run("Filtered Channel Still Acked", func(t *testing.T) {
		channels := channelconfig.New()
		channels.Replace("ctx-a", []string{"C-other"})
		engine := newTestServer(t, channels)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, signedRequest(eventBody))

		if w.Code != http.StatusOK {
			t.Fatalf("dropped events must still be acked, got %d", w.Code)
		}
		total, _ := queryTotal(t, engine)
		if total != 0 {
			t.Errorf("filtered event should not be stored")
		}
	})

	t.Run("Health Probe", func(t *testing.T) {
		engine := newTestServer(t, channelconfig.New())

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhook/slack", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "healthy" || resp["timestamp"] == "" {
			t.Errorf("unexpected health payload: %v", resp)
		}
	})
}
