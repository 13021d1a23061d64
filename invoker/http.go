package invoker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/logging"
)

// HTTPOptions configures the HTTP invoker.
type HTTPOptions struct {
	// Client used for requests. Defaults to http.DefaultClient.
	Client *http.Client
	// Timeout is the per-call deadline applied to every invocation.
	Timeout time.Duration
	// Logger for invocation diagnostics.
	Logger logging.Logger
}

// HTTP invokes workers deployed behind HTTP endpoints: the payload is POSTed
// as JSON and the response body decoded back into a payload. One attempt per
// call, no retries, no circuit breaking; a per-call deadline bounds each
// round trip and a deadline hit is reported like any other transport fault,
// leaving the retryable-vs-fatal decision to the caller.
type HTTP struct {
	endpoints map[string]string
	client    *http.Client
	timeout   time.Duration
	logger    logging.Logger
}

// Compile-time interface assertion.
var _ Invoker = (*HTTP)(nil)

// NewHTTP constructs an HTTP invoker from a worker-name to endpoint-URL
// mapping.
func NewHTTP(endpoints map[string]string, optFns ...func(o *HTTPOptions)) *HTTP {
	opts := HTTPOptions{Client: http.DefaultClient, Timeout: 30 * time.Second, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	eps := make(map[string]string, len(endpoints))
	for k, v := range endpoints {
		eps[k] = v
	}
	return &HTTP{endpoints: eps, client: opts.Client, timeout: opts.Timeout, logger: logging.OrNoOp(opts.Logger)}
}

// Invoke POSTs the payload to the worker's endpoint and returns the decoded
// response. Every fault becomes an error payload.
func (h *HTTP) Invoke(ctx context.Context, workerName string, payload core.Payload) core.Payload {
	url, ok := h.endpoints[workerName]
	if !ok {
		return core.ErrorPayload(fmt.Sprintf("no endpoint configured for worker: %s", workerName))
	}

	if payload == nil {
		payload = core.Payload{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return core.ErrorPayload(fmt.Sprintf("failed to encode payload for worker %s: %v", workerName, err))
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return core.ErrorPayload(fmt.Sprintf("failed to build request for worker %s: %v", workerName, err))
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Warn("invoker.http.failed", "worker", workerName, "error", err.Error())
		return core.ErrorPayload(fmt.Sprintf("failed to invoke worker %s: %v", workerName, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.ErrorPayload(fmt.Sprintf("failed to read response from worker %s: %v", workerName, err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		h.logger.Warn("invoker.http.status", "worker", workerName, "status", resp.StatusCode)
		return core.ErrorPayload(fmt.Sprintf("worker %s returned status %d", workerName, resp.StatusCode))
	}

	var out core.Payload
	if err := json.Unmarshal(raw, &out); err != nil {
		return core.ErrorPayload(fmt.Sprintf("failed to decode response from worker %s: %v", workerName, err))
	}

	h.logger.Debug("invoker.http.invoke", "worker", workerName, "duration_ms", time.Since(start).Milliseconds())
	return out
}
