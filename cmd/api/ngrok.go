package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trial-monitor/pkg/log"
)

const (
	ngrokAPIBase      = "http://ngrok:4040"
	ngrokAttempts     = 10
	ngrokRetryDelay   = 3 * time.Second
	telegramHookRoute = "/webhook/telegram"
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// resolveWebhookURL returns the configured webhook URL, or asks a local ngrok
// agent for its public URL when none is configured. "" means no webhook.
func resolveWebhookURL(ctx context.Context, l log.Logger, configured string) string {
	if configured != "" {
		return configured
	}
	publicURL, err := detectNgrokURL(ctx, ngrokAPIBase)
	if err != nil {
		l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		return ""
	}
	l.Infof(ctx, "Auto-detected ngrok URL: %s", publicURL)
	return publicURL + telegramHookRoute
}

// detectNgrokURL polls the ngrok local API until a tunnel is up, preferring HTTPS.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		publicURL, err := fetchTunnel(ctx, client, apiBase+"/api/tunnels")
		if err == nil && publicURL != "" {
			return publicURL, nil
		}
		lastErr = err

		if attempt == ngrokAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokRetryDelay):
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", ngrokAttempts, lastErr)
	}
	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", ngrokAttempts)
}

func fetchTunnel(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
