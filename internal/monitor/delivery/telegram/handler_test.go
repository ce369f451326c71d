package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-monitor/internal/extract"
	"trial-monitor/internal/middleware"
	"trial-monitor/internal/model"
	"trial-monitor/internal/monitor"
	"trial-monitor/internal/monitor/delivery/telegram"
	pkgLog "trial-monitor/pkg/log"
	pkgTelegram "trial-monitor/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockUseCase struct {
	mu         sync.Mutex
	output     monitor.HandleMessageOutput
	err        error
	notice     string
	inputs     []monitor.HandleMessageInput
	resetCalls []string
}

func (m *mockUseCase) HandleMessage(ctx context.Context, input monitor.HandleMessageInput) (monitor.HandleMessageOutput, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	notice := m.notice
	m.mu.Unlock()

	if notice != "" && input.OnProgress != nil {
		input.OnProgress(ctx, notice)
	}
	return m.output, m.err
}

func (m *mockUseCase) Dispatch(ctx context.Context, args extract.Arguments) monitor.HandlerResult {
	return monitor.HandlerResult{}
}

func (m *mockUseCase) Preview(ctx context.Context, text string) monitor.PreviewOutput {
	return monitor.PreviewOutput{}
}

func (m *mockUseCase) Stats(ctx context.Context) (monitor.StatsOutput, error) {
	return monitor.StatsOutput{}, nil
}

func (m *mockUseCase) ResetConversation(ctx context.Context, sender string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetCalls = append(m.resetCalls, sender)
	return nil
}

func (m *mockUseCase) senders() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.inputs))
	for _, in := range m.inputs {
		out = append(out, in.Sender)
	}
	return out
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type captured struct {
	mu   sync.Mutex
	msgs []string
}

func (c *captured) add(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, text)
}

func (c *captured) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

func (c *captured) waitFor(atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if msgs := c.snapshot(); len(msgs) >= atLeast {
			return msgs
		}
		time.Sleep(20 * time.Millisecond)
	}
	return c.snapshot()
}

type testEnv struct {
	engine *gin.Engine
	uc     *mockUseCase
	sent   *captured
}

func newTestEnv(t *testing.T, limiter telegram.Limiter) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sent := &captured{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var payload pkgTelegram.SendMessageRequest
			_ = json.NewDecoder(r.Body).Decode(&payload)
			sent.add(payload.Text)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc := &mockUseCase{}
	engine := gin.New()
	h := telegram.New(pkgLog.NewNop(), uc, bot, limiter)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{engine: engine, uc: uc, sent: sent}
}

func sendWebhook(engine *gin.Engine, fromID int64, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: fromID},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, nil)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t, nil)

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestHandleStartAndHelp(t *testing.T) {
	env := newTestEnv(t, nil)

	require.Equal(t, http.StatusOK, sendWebhook(env.engine, 456, "/start").Code)
	msgs := env.sent.waitFor(1, time.Second)
	assertContains(t, msgs, "Clinical Trial Monitor")

	require.Equal(t, http.StatusOK, sendWebhook(env.engine, 456, "/help").Code)
	msgs = env.sent.waitFor(2, time.Second)
	assertContains(t, msgs, "Examples")

	assert.Empty(t, env.uc.senders(), "commands never reach the use case")
}

func TestHandleReset(t *testing.T) {
	env := newTestEnv(t, nil)

	require.Equal(t, http.StatusOK, sendWebhook(env.engine, 456, "/reset").Code)
	msgs := env.sent.waitFor(1, time.Second)
	assertContains(t, msgs, "history cleared")

	env.uc.mu.Lock()
	defer env.uc.mu.Unlock()
	assert.Equal(t, []string{"telegram_456"}, env.uc.resetCalls)
}

func TestHandleMessage_Success(t *testing.T) {
	env := newTestEnv(t, nil)
	env.uc.notice = "Analyzing clinical trial data..."
	env.uc.output = monitor.HandleMessageOutput{
		RequestType: model.RequestClinicalTrialAnalysis,
		Success:     true,
		Reply:       "Clinical Trial Analysis:\n\nNo serious events.",
	}

	w := sendWebhook(env.engine, 456, "Analyze clinical trial results: headache")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accepted")

	msgs := env.sent.waitFor(2, time.Second)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Analyzing clinical trial data...", msgs[0])
	assert.Equal(t, "Clinical Trial Analysis:\n\nNo serious events.", msgs[1])
	assert.Equal(t, []string{"telegram_456"}, env.uc.senders())
}

func TestHandleMessage_UseCaseError(t *testing.T) {
	env := newTestEnv(t, nil)
	env.uc.err = errors.New("boom")

	require.Equal(t, http.StatusOK, sendWebhook(env.engine, 456, "hello").Code)
	msgs := env.sent.waitFor(1, time.Second)
	assertContains(t, msgs, monitor.FallbackReply)
}

func TestHandleMessage_RateLimited(t *testing.T) {
	env := newTestEnv(t, middleware.NewRateLimiter(10)) // burst 1
	env.uc.output = monitor.HandleMessageOutput{Success: true, Reply: "ok"}

	require.Equal(t, http.StatusOK, sendWebhook(env.engine, 456, "first").Code)
	env.sent.waitFor(1, time.Second)
	require.Equal(t, http.StatusOK, sendWebhook(env.engine, 456, "second").Code)
	msgs := env.sent.waitFor(2, time.Second)

	assertContains(t, msgs, "too quickly")
	assert.Len(t, env.uc.senders(), 1)
}
