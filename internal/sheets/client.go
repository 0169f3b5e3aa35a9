// Package sheets talks to the spreadsheet-backed script endpoint that acts as
// the remote store.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"linha-viva/internal/metrics"
)

// WriteType names the kind of record a POST carries.
type WriteType string

const (
	TypeNewRequest    WriteType = "NOVA_SOLICITACAO"
	TypeRequestStatus WriteType = "ATUALIZACAO_STATUS_PEDIDO"
	TypeStockMovement WriteType = "MOVIMENTACAO_ESTOQUE"
	TypeFullTable     WriteType = "ATUALIZAR_ESTOQUE_TOTAL"
)

// AppName is sent with every write so the script can tell clients apart.
const AppName = "Linha Viva"

const (
	actionReadRequests = "read_requests"
	maxBodyBytes       = 25 << 20
)

var (
	ErrNotConfigured     = errors.New("sheets endpoint not configured")
	ErrMalformedResponse = errors.New("malformed response from sheets endpoint")
	ErrUnexpectedPayload = errors.New("sheets endpoint returned a non-array payload")
	ErrRejected          = errors.New("sheets endpoint rejected the write")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status=%d: %s", e.Code, e.Body)
}

// Envelope is the body of every write.
type Envelope struct {
	Type      WriteType `json:"type"`
	Payload   any       `json:"payload"`
	App       string    `json:"app"`
	Timestamp string    `json:"timestamp"`
}

// Ack describes what the endpoint said about a write. Confirmed is false
// when the response could not be read (empty or not JSON); the write may or
// may not have landed.
type Ack struct {
	Confirmed bool   `json:"confirmed"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
}

// URLProvider resolves the endpoint for each call, so a URL changed in the
// settings takes effect without rebuilding the client.
type URLProvider func(ctx context.Context) string

// StaticURL always returns u.
func StaticURL(u string) URLProvider {
	return func(context.Context) string { return u }
}

type Client struct {
	httpClient *http.Client
	endpoint   URLProvider
	now        func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func NewClient(endpoint URLProvider, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadInventory fetches the raw inventory rows.
func (c *Client) ReadInventory(ctx context.Context) ([]map[string]any, error) {
	return c.read(ctx, "")
}

// ReadRequests fetches the raw request rows.
func (c *Client) ReadRequests(ctx context.Context) ([]map[string]any, error) {
	return c.read(ctx, actionReadRequests)
}

func (c *Client) read(ctx context.Context, action string) (rows []map[string]any, err error) {
	op := "read"
	if action != "" {
		op = action
	}
	started := c.now()
	defer func() { metrics.ObserveRemoteCall(op, err, started) }()

	u, err := c.readURL(ctx, action)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeRows(body)
}

// Write posts one record. Writes use a plain-text content type, which the
// script endpoint accepts without a CORS pre-flight.
func (c *Client) Write(ctx context.Context, typ WriteType, payload any) (ack Ack, err error) {
	started := c.now()
	defer func() { metrics.ObserveRemoteCall("write:"+string(typ), err, started) }()

	endpoint := strings.TrimSpace(c.endpoint(ctx))
	if endpoint == "" {
		return Ack{}, ErrNotConfigured
	}

	b, err := json.Marshal(Envelope{
		Type:      typ,
		Payload:   payload,
		App:       AppName,
		Timestamp: c.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
	if err != nil {
		return Ack{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return Ack{}, err
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	body, err := c.do(req)
	if err != nil {
		return Ack{}, err
	}
	return parseAck(body)
}

func (c *Client) readURL(ctx context.Context, action string) (string, error) {
	endpoint := strings.TrimSpace(c.endpoint(ctx))
	if endpoint == "" {
		return "", ErrNotConfigured
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid sheets url: %w", err)
	}
	q := u.Query()
	q.Set("nocache", strconv.FormatInt(c.now().UnixMilli(), 10))
	if action != "" {
		q.Set("action", action)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return nil, &StatusError{Code: resp.StatusCode, Body: msg}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("sheets response read failed: %w", err)
	}
	return body, nil
}

func decodeRows(body []byte) ([]map[string]any, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var list []any
	switch v := decoded.(type) {
	case []any:
		list = v
	case map[string]any:
		for _, key := range []string{"data", "items"} {
			if inner, ok := v[key].([]any); ok {
				list = inner
				break
			}
		}
		if list == nil {
			return nil, ErrUnexpectedPayload
		}
	default:
		return nil, ErrUnexpectedPayload
	}

	rows := make([]map[string]any, 0, len(list))
	for _, el := range list {
		row, _ := el.(map[string]any)
		rows = append(rows, row)
	}
	return rows, nil
}

func parseAck(body []byte) (Ack, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Ack{}, nil
	}

	var out struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &out); err != nil || out.Status == "" {
		return Ack{}, nil
	}

	ack := Ack{Confirmed: true, Status: out.Status, Message: out.Message}
	switch strings.ToLower(out.Status) {
	case "error", "erro", "fail", "failed":
		ack.Confirmed = false
		return ack, fmt.Errorf("%w: %s", ErrRejected, out.Message)
	}
	return ack, nil
}
