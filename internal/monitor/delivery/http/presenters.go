package http

import (
	"strings"

	"trial-monitor/internal/monitor"
	"trial-monitor/pkg/response"
)

// --- Request DTOs ---

type messageReq struct {
	Sender string `json:"sender" binding:"required,max=255"`
	Text   string `json:"text"   binding:"required"`
}

func (r messageReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

func (r messageReq) toInput() monitor.HandleMessageInput {
	return monitor.HandleMessageInput{
		Sender: r.Sender,
		Text:   r.Text,
	}
}

// --- Response DTOs ---

type messageResp struct {
	RequestType string `json:"request_type"`
	Rule        string `json:"rule,omitempty"`
	Success     bool   `json:"success"`
	Reply       string `json:"reply"`
}

func (h *handler) newMessageResp(out monitor.HandleMessageOutput) messageResp {
	return messageResp{
		RequestType: out.RequestType.String(),
		Rule:        out.Rule,
		Success:     out.Success,
		Reply:       out.Reply,
	}
}

type recordResp struct {
	ID          string            `json:"id"`
	Sender      string            `json:"sender"`
	RequestType string            `json:"request_type"`
	Status      string            `json:"status"`
	Timestamp   response.DateTime `json:"timestamp"`
}

type statsResp struct {
	Total  int64        `json:"total"`
	Recent []recordResp `json:"recent"`
}

func (h *handler) newStatsResp(out monitor.StatsOutput) statsResp {
	recent := make([]recordResp, len(out.Recent))
	for i, r := range out.Recent {
		recent[i] = recordResp{
			ID:          r.ID,
			Sender:      r.Sender,
			RequestType: r.RequestType.String(),
			Status:      string(r.Status),
			Timestamp:   response.DateTime(r.Timestamp),
		}
	}
	return statsResp{Total: out.Total, Recent: recent}
}
