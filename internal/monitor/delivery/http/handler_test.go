package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-monitor/internal/extract"
	"trial-monitor/internal/middleware"
	"trial-monitor/internal/model"
	"trial-monitor/internal/monitor"
	pkgLog "trial-monitor/pkg/log"
	"trial-monitor/pkg/response"
)

type mockUseCase struct {
	output  monitor.HandleMessageOutput
	err     error
	stats   monitor.StatsOutput
	lastIn  monitor.HandleMessageInput
	cleared string
}

func (m *mockUseCase) HandleMessage(ctx context.Context, input monitor.HandleMessageInput) (monitor.HandleMessageOutput, error) {
	m.lastIn = input
	return m.output, m.err
}

func (m *mockUseCase) Dispatch(ctx context.Context, args extract.Arguments) monitor.HandlerResult {
	return monitor.HandlerResult{}
}

func (m *mockUseCase) Preview(ctx context.Context, text string) monitor.PreviewOutput {
	return monitor.PreviewOutput{}
}

func (m *mockUseCase) Stats(ctx context.Context) (monitor.StatsOutput, error) {
	return m.stats, m.err
}

func (m *mockUseCase) ResetConversation(ctx context.Context, sender string) error {
	if sender == "" {
		return monitor.ErrEmptySender
	}
	m.cleared = sender
	return m.err
}

func newEngine(uc *mockUseCase, perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	mw := middleware.New(pkgLog.NewNop(), middleware.Config{RateLimitPerMin: perMin})
	RegisterRoutes(engine.Group("/api/v1"), New(pkgLog.NewNop(), uc), mw)
	return engine
}

func do(engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, response.Resp) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSendMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		ucOut      monitor.HandleMessageOutput
		ucErr      error
		wantStatus int
	}{
		{
			name: "success",
			body: messageReq{Sender: "web_1", Text: "data quality review. source data: x"},
			ucOut: monitor.HandleMessageOutput{
				RequestType: model.RequestDataQuality,
				Rule:        "data_quality",
				Success:     true,
				Reply:       "Data Quality Analysis Results:\n\n[]",
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing sender",
			body:       map[string]string{"text": "hello"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank text",
			body:       messageReq{Sender: "web_1", Text: "   "},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "use case rejects input",
			body:       messageReq{Sender: "web_1", Text: "hello"},
			ucErr:      monitor.ErrEmptyMessage,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unexpected failure",
			body:       messageReq{Sender: "web_1", Text: "hello"},
			ucErr:      errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{output: tt.ucOut, err: tt.ucErr}
			w, resp := do(newEngine(uc, 0), http.MethodPost, "/api/v1/monitor/messages", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus != http.StatusOK {
				return
			}
			data, ok := resp.Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "data_quality", data["request_type"])
			assert.Equal(t, true, data["success"])
			assert.Equal(t, tt.ucOut.Reply, data["reply"])
			assert.Equal(t, "web_1", uc.lastIn.Sender)
		})
	}
}

func TestSendMessage_RateLimited(t *testing.T) {
	uc := &mockUseCase{output: monitor.HandleMessageOutput{Success: true, Reply: "ok"}}
	engine := newEngine(uc, 10) // burst 1

	body := messageReq{Sender: "web_1", Text: "hello"}
	w, _ := do(engine, http.MethodPost, "/api/v1/monitor/messages", body)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(engine, http.MethodPost, "/api/v1/monitor/messages", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestStats(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	uc := &mockUseCase{stats: monitor.StatsOutput{
		Total: 12,
		Recent: []monitor.RequestRecord{
			{ID: "r2", Sender: "web_1", RequestType: model.RequestMonitoringPlan, Status: monitor.RequestStatusFailed, Timestamp: ts},
			{ID: "r1", Sender: "web_1", RequestType: model.RequestFileRanking, Status: monitor.RequestStatusProcessed, Timestamp: ts},
		},
	}}

	w, resp := do(newEngine(uc, 0), http.MethodGet, "/api/v1/monitor/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	assert.EqualValues(t, 12, data["total"])
	recent := data["recent"].([]any)
	require.Len(t, recent, 2)
	first := recent[0].(map[string]any)
	assert.Equal(t, "r2", first["id"])
	assert.Equal(t, "monitoring_plan", first["request_type"])
	assert.Equal(t, "failed", first["status"])
	assert.Equal(t, "2024-03-01 09:30:00", first["timestamp"])
}

func TestStats_Error(t *testing.T) {
	uc := &mockUseCase{err: errors.New("store down")}
	w, _ := do(newEngine(uc, 0), http.MethodGet, "/api/v1/monitor/stats", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResetConversation(t *testing.T) {
	uc := &mockUseCase{}
	w, _ := do(newEngine(uc, 0), http.MethodDelete, "/api/v1/monitor/conversations/web_1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "web_1", uc.cleared)
}
