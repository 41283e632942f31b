// Package hotelapi is the JSON client for the hotel REST backend.
//
// Every successful response is wrapped in a {"data": T} envelope. Failures carry
// {"message"} or {"title"} and are turned into *failure.Failure values so handlers can
// pass the upstream status through.
package hotelapi

//go:generate go run go.uber.org/mock/mockgen -source=./hotelapi.go -destination=./mocks/hotelapi_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
)

const (
	MessageNotModified = "Content not modified!"
	MessageNoContent   = "Content not found."
	MessageFallback    = "An error occurred while processing your request"
	MessageUnreachable = "Hotel backend is unreachable"
)

type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Message string          `json:"message"`
	Title   string          `json:"title"`
	Errors  json.RawMessage `json:"errors"`
}

type clientImpl struct {
	baseURL     string
	httpClient  *http.Client
	otel        otel.Otel
	maxRetry    uint
	retryWait   time.Duration
	staticToken string
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return NewWithHTTPClient(cfg, ot, &http.Client{
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	})
}

func NewWithHTTPClient(cfg *config.Config, ot otel.Otel, httpClient *http.Client) Client {
	maxRetry := cfg.Backend.MaxRetry
	if maxRetry == 0 {
		maxRetry = 1
	}

	return &clientImpl{
		baseURL:     strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient:  httpClient,
		otel:        ot,
		maxRetry:    maxRetry,
		retryWait:   time.Duration(cfg.Backend.RetryWaitMillis) * time.Millisecond,
		staticToken: cfg.Backend.StaticBearerToken,
	}
}

// WithBearerToken makes outgoing backend calls carry token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyBearerToken, token)
}

// Get is idempotent and retried with exponential backoff on transport errors and 5xx.
func (c *clientImpl) Get(ctx context.Context, path string, query url.Values, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GET")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("http.path", path)

	retryBackoff := backoff.NewExponentialBackOff()
	if c.retryWait > 0 {
		retryBackoff.InitialInterval = c.retryWait
	}

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		callErr := c.do(ctx, http.MethodGet, path, query, nil, out)
		if callErr != nil && !retryable(callErr) {
			return struct{}{}, backoff.Permanent(callErr)
		}

		return struct{}{}, callErr
	},
		backoff.WithBackOff(retryBackoff),
		backoff.WithMaxTries(c.maxRetry),
		backoff.WithNotify(func(err error, wait time.Duration) {
			log.Warn().Err(err).Str("path", path).Dur("wait", wait).Msg("retrying hotel backend GET")
		}),
	)

	return err
}

// Post, Put, Patch and Delete are sent exactly once.
func (c *clientImpl) Post(ctx context.Context, path string, body, out any) error {
	return c.mutate(ctx, http.MethodPost, path, body, out)
}

func (c *clientImpl) Put(ctx context.Context, path string, body, out any) error {
	return c.mutate(ctx, http.MethodPut, path, body, out)
}

func (c *clientImpl) Patch(ctx context.Context, path string, body, out any) error {
	return c.mutate(ctx, http.MethodPatch, path, body, out)
}

func (c *clientImpl) Delete(ctx context.Context, path string, out any) error {
	return c.mutate(ctx, http.MethodDelete, path, nil, out)
}

func (c *clientImpl) mutate(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+"."+method)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("http.path", path)

	return c.do(ctx, method, path, nil, body, out)
}

func (c *clientImpl) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if token := c.bearerToken(ctx); token != constant.Empty {
		request.Header.Set(constant.RequestHeaderAuthorization, constant.BearerPrefix+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("hotel backend request failed")

		return fmt.Errorf("%s %s: %w", method, path, &transportError{cause: err})
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, &transportError{cause: err})
	}

	if fail := statusFailure(response.StatusCode, payload, out != nil); fail != nil {
		log.Warn().
			Int("status", response.StatusCode).
			Str("method", method).
			Str("path", path).
			Str("message", fail.Message).
			Msg("hotel backend returned an error")

		return fmt.Errorf("%s %s: %w", method, path, fail)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("failed to decode %s %s envelope: %w", method, path, err)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s data: %w", method, path, err)
	}

	return nil
}

func (c *clientImpl) bearerToken(ctx context.Context) string {
	if token, ok := ctx.Value(constant.ContextKeyBearerToken).(string); ok && token != constant.Empty {
		return token
	}

	return c.staticToken
}

// statusFailure maps a backend status and body to the failure shown to the operator.
// 204 only counts as a failure when the caller expected a body.
func statusFailure(status int, payload []byte, expectsBody bool) *failure.Failure {
	switch {
	case status == http.StatusNoContent:
		if expectsBody {
			return &failure.Failure{Code: http.StatusNotFound, Message: MessageNoContent}
		}

		return nil
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return nil
	case status == http.StatusNotModified:
		return &failure.Failure{Code: status, Message: MessageNotModified}
	case status == http.StatusUnauthorized:
		return failure.SessionExpired
	}

	var body errorEnvelope
	_ = json.Unmarshal(payload, &body)

	message := MessageFallback
	if body.Message != constant.Empty {
		message = body.Message
	} else if body.Title != constant.Empty {
		message = body.Title
	}

	code := status
	if status >= http.StatusInternalServerError {
		code = http.StatusBadGateway
	}

	return &failure.Failure{Code: code, Message: message}
}

type transportError struct {
	cause error
}

func (e *transportError) Error() string {
	return MessageUnreachable + ": " + e.cause.Error()
}

func (e *transportError) Unwrap() error {
	return &failure.Failure{Code: http.StatusBadGateway, Message: MessageUnreachable}
}

func retryable(err error) bool {
	var transport *transportError
	if errors.As(err, &transport) {
		return !errors.Is(transport.cause, context.Canceled)
	}

	code := failure.GetCode(err)

	return code == http.StatusBadGateway || code == http.StatusTooManyRequests
}
