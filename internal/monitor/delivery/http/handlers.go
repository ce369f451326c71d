package http

import (
	"github.com/gin-gonic/gin"

	"trial-monitor/pkg/response"
)

// SendMessage godoc
// @Summary     Submit a monitoring message
// @Description Classifies the message, extracts its fields and runs the matching review. The reply is the text a chat user would receive.
// @Tags        Monitor
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message"
// @Success     200  {object} messageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/monitor/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		if isClientError(err) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newMessageResp(output))
}

// Stats godoc
// @Summary     Request statistics
// @Description Returns the number of requests handled since start and the most recent request log entries, newest first.
// @Tags        Monitor
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/monitor/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// ResetConversation godoc
// @Summary     Clear a sender's conversation
// @Description Forgets the guidance history kept for the sender.
// @Tags        Monitor
// @Produce     json
// @Param       sender path string true "Sender ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/monitor/conversations/{sender} [DELETE]
func (h *handler) ResetConversation(c *gin.Context) {
	ctx := c.Request.Context()
	sender := c.Param("sender")

	if err := h.uc.ResetConversation(ctx, sender); err != nil {
		h.l.Errorf(ctx, "uc.ResetConversation: %v", err)
		if isClientError(err) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, map[string]string{"sender": sender, "status": "cleared"})
}
