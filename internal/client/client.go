package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-vibe-navigator/app/observability/metrics"
	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

const tracerName = "AgentClient"

// AgentClient is the boundary to the vibe agent backend. Each call is a
// single request/response round trip: no retry, no caching, no local
// state beyond what the caller does with the returned value.
type AgentClient interface {
	Chat(ctx context.Context, query, city string, history []types.ChatTurn) (*types.AgentResponse, error)
	GenerateTour(ctx context.Context, city string, vibeTags []string) (*types.TourResult, error)
	FetchLocations(ctx context.Context, city, category string) ([]types.Location, error)
}

var _ AgentClient = (*HTTPAgentClient)(nil)

type HTTPAgentClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPAgentClient builds the HTTP client against the configured base
// URL. The timeout bounds every request; the backend has none of its own.
func NewHTTPAgentClient(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPAgentClient {
	metrics.InitAppMetrics()
	return &HTTPAgentClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Chat sends one conversational turn to POST /vibes/agent/chat. An HTTP
// 422 maps to *ValidationError; any other failure to *TransportError.
func (c *HTTPAgentClient) Chat(ctx context.Context, query, city string, history []types.ChatTurn) (*types.AgentResponse, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Chat", trace.WithAttributes(
		attribute.String("vibe.city", city),
		attribute.Int("chat.history_turns", len(history)),
	))
	defer span.End()

	if history == nil {
		history = []types.ChatTurn{}
	}
	body := types.ChatRequest{Query: query, City: city, ChatHistory: history}

	respBody, status, err := c.do(ctx, http.MethodPost, "/vibes/agent/chat", nil, body)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if status == http.StatusUnprocessableEntity {
		vErr := &ValidationError{Detail: string(respBody)}
		span.RecordError(vErr)
		c.logger.WarnContext(ctx, "Agent rejected chat payload", slog.String("detail", vErr.Detail))
		return nil, vErr
	}
	if status < 200 || status > 299 {
		tErr := transportError(status, respBody)
		span.RecordError(tErr)
		return nil, tErr
	}

	var resp types.AgentResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}
	return &resp, nil
}

// GenerateTour requests a curated tour from POST /vibes/agent/tour. The
// response shape is backend-defined, so it is validated against a schema
// before decoding; the full decoded body is kept on TourResult.Raw.
func (c *HTTPAgentClient) GenerateTour(ctx context.Context, city string, vibeTags []string) (*types.TourResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "GenerateTour", trace.WithAttributes(
		attribute.String("vibe.city", city),
		attribute.StringSlice("vibe.tags", vibeTags),
	))
	defer span.End()

	body := types.TourRequest{City: city, VibeTags: vibeTags}

	respBody, status, err := c.do(ctx, http.MethodPost, "/vibes/agent/tour", nil, body)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if status < 200 || status > 299 {
		tErr := transportError(status, respBody)
		span.RecordError(tErr)
		return nil, tErr
	}

	if err := validateTourPayload(respBody); err != nil {
		span.RecordError(err)
		return nil, err
	}

	var tour types.TourResult
	if err := json.Unmarshal(respBody, &tour); err != nil {
		return nil, fmt.Errorf("failed to decode tour response: %w", err)
	}
	if err := json.Unmarshal(respBody, &tour.Raw); err != nil {
		return nil, fmt.Errorf("failed to decode tour response: %w", err)
	}
	return &tour, nil
}

// FetchLocations queries GET /vibes/locations. An empty result list is a
// success, not an error; the caller decides how to surface it.
func (c *HTTPAgentClient) FetchLocations(ctx context.Context, city, category string) ([]types.Location, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "FetchLocations", trace.WithAttributes(
		attribute.String("vibe.city", city),
		attribute.String("vibe.category", category),
	))
	defer span.End()

	params := url.Values{}
	params.Set("city", city)
	params.Set("category", category)

	respBody, status, err := c.do(ctx, http.MethodGet, "/vibes/locations", params, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if status < 200 || status > 299 {
		tErr := transportError(status, respBody)
		span.RecordError(tErr)
		return nil, tErr
	}

	var locations []types.Location
	if err := json.Unmarshal(respBody, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations response: %w", err)
	}
	if locations == nil {
		locations = []types.Location{}
	}
	return locations, nil
}

// do performs one round trip and returns the raw body and status. Network
// level failures come back as *TransportError with a zero status.
func (c *HTTPAgentClient) do(ctx context.Context, method, path string, params url.Values, body interface{}) ([]byte, int, error) {
	start := time.Now()
	m := metrics.Get()
	opAttrs := metric.WithAttributes(attribute.String("operation", path))

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		m.AgentRequestErrorsTotal.Add(ctx, 1, opAttrs)
		c.logger.ErrorContext(ctx, "Agent request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return nil, 0, &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		m.AgentRequestErrorsTotal.Add(ctx, 1, opAttrs)
		return nil, 0, &TransportError{Message: err.Error()}
	}

	m.AgentRequestsTotal.Add(ctx, 1, opAttrs)
	m.AgentRequestDurationSeconds.Record(ctx, time.Since(start).Seconds(), opAttrs)
	c.logger.DebugContext(ctx, "Agent request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)
	return respBody, resp.StatusCode, nil
}
