package devrev

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Result is the uniform outcome of one outbound call. The transport never
// propagates a panic or raw error past this boundary; callers branch on
// Success and read ErrMessage for diagnostics.
type Result struct {
	Success    bool
	Data       json.RawMessage
	ErrMessage string
}

// postCall issues one authenticated JSON POST and converts every failure
// mode into a Result
func postCall(ctx context.Context, client *http.Client, url, token string, payload any) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{ErrMessage: fmt.Sprintf("failed to marshal payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{ErrMessage: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return Result{ErrMessage: err.Error()}
	}
	defer func(c io.Closer) {
		_ = c.Close()
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{ErrMessage: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{ErrMessage: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(data))}
	}

	return Result{Success: true, Data: data}
}

// logResult logs a failed call once at the transport boundary
func logResult(log *zap.Logger, op string, res Result) {
	if !res.Success {
		log.Error("DevRev call failed",
			zap.String("op", op),
			zap.String("err_message", res.ErrMessage))
	}
}
