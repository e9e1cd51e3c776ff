package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBytes = 4 << 20

// Client клиент удаленного REST API салона
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	observer   Observer
	loc        *time.Location
}

// Option настройка клиента
type Option func(*Client)

// WithObserver подключает сбор метрик вызовов
func WithObserver(observer Observer) Option {
	return func(c *Client) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// WithLocation задает часовой пояс, в котором разбираются даты записей
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithHTTPClient подменяет http.Client (тесты, кастомный транспорт)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient создает новый экземпляр клиента API салона
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:      log,
		observer: noopObserver{},
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request описание одного HTTP вызова
type request struct {
	operation   string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	token       string
}

// response тело и статус ответа
type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// message извлекает текст ошибки/сообщения из тела ответа без изменений.
// Сообщение из одних пробелов считается отсутствующим.
func (r *response) message() string {
	var m messageResponse
	if err := json.Unmarshal(r.body, &m); err != nil {
		return ""
	}
	text := m.text()
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}

// do выполняет запрос. Ошибка возвращается только для транспортных сбоев.
func (c *Client) do(ctx context.Context, r request) (*response, error) {
	started := time.Now()

	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, r.body)
	if err != nil {
		c.observer.ObserveGatewayCall(r.operation, "request_error", time.Since(started))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observer.ObserveGatewayCall(r.operation, "transport_error", time.Since(started))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.observer.ObserveGatewayCall(r.operation, "transport_error", time.Since(started))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.observer.ObserveGatewayCall(r.operation, statusOutcome(resp.StatusCode), time.Since(started))
	return &response{status: resp.StatusCode, body: body}, nil
}

func statusOutcome(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "success"
	case status >= 400 && status < 500:
		return "client_error"
	case status >= 500:
		return "server_error"
	default:
		return "unexpected"
	}
}

// jsonBody сериализует тело запроса
func jsonBody(v interface{}) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// unwrap возвращает значение первого найденного ключа-обертки объекта
// ({"data": ...}, {"salon": ...}) либо само тело
func unwrap(body []byte, keys ...string) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return trimmed
	}
	for _, key := range keys {
		if v, ok := envelope[key]; ok && !isNull(v) {
			return bytes.TrimSpace(v)
		}
	}
	return trimmed
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
