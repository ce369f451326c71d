package test

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"trial-monitor/internal/monitor"
	pkgLog "trial-monitor/pkg/log"
)

const defaultTestUserID = 999999999

type handler struct {
	l  pkgLog.Logger
	uc monitor.UseCase
}

// HandleTestMessage previews routing for a message without calling the oracle
// @Summary Test message routing
// @Description Classify a message and extract its handler arguments without calling the LLM or Telegram
// @Tags test
// @Accept json
// @Produce json
// @Param request body TestMessageRequest true "Test message"
// @Success 200 {object} TestMessageResponse
// @Router /test/message [post]
func (h *handler) HandleTestMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req TestMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if req.UserID == 0 {
		req.UserID = defaultTestUserID
	}

	preview := h.uc.Preview(ctx, req.Text)

	h.l.Infof(ctx, "internal.test.HandleTestMessage: text=%q request_type=%s rule=%s",
		req.Text, preview.RequestType, preview.Rule)

	c.JSON(200, TestMessageResponse{
		Success:     true,
		RequestType: preview.RequestType.String(),
		Rule:        preview.Rule,
		Arguments:   preview.Arguments,
		Text:        req.Text,
		UserID:      req.UserID,
	})
}

// HandleResetSession resets the conversation history for a test user
// @Summary Reset test user session
// @Description Clear conversation history for a test user
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResetSessionRequest true "Reset session"
// @Success 200 {object} ResetSessionResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if req.UserID == 0 {
		req.UserID = defaultTestUserID
	}

	sender := fmt.Sprintf("telegram_%d", req.UserID)
	if err := h.uc.ResetConversation(ctx, sender); err != nil {
		h.l.Errorf(ctx, "internal.test.HandleResetSession: %v", err)
		c.JSON(500, ResetSessionResponse{Success: false, Message: err.Error(), UserID: req.UserID})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleResetSession: Cleared session for user_id=%d", req.UserID)

	c.JSON(200, ResetSessionResponse{
		Success: true,
		Message: fmt.Sprintf("Session cleared for user %d", req.UserID),
		UserID:  req.UserID,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(200, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
