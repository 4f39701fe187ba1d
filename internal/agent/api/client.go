// Package api содержит HTTP-клиент для взаимодействия с сервером AquaMate.
//
// Клиент инкапсулирует базовый URL сервера (вместе с префиксом /api/v1)
// и настроенный http.Client, предоставляя типизированные методы для всех эндпоинтов.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - При ответах 204 No Content тело не читается и это считается успехом.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - При ошибочных ответах (не 2xx) возвращается *APIError: статус и
//     {"error","message"} из тела, а если тело не JSON — его текст.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// APIPrefix — префикс маршрутов API на сервере.
const APIPrefix = "/api/v1"

// DefaultTimeout — таймаут запроса, если не задан в профиле.
const DefaultTimeout = 10 * time.Second

// Client реализует HTTP-клиент для общения с сервером AquaMate.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут, транспорт).
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption настраивает Client.
type ClientOption func(*Client)

// WithTimeout задаёт таймаут http.Client. d <= 0 игнорируется.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient подменяет http.Client целиком (например, для TLS с собственным CA).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "http://127.0.0.1:5000").
//
// Поведение:
//   - обрезает завершающий "/" у baseURL;
//   - создаёт http.Client с таймаутом DefaultTimeout.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError — ответ сервера с кодом не 2xx.
type APIError struct {
	Status  int
	Kind    string // "not found", "invalid input", ...
	Message string
}

func (e *APIError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Kind, e.Message)
}

// IsNotFound — сервер ответил 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// readAPIErrorBody читает тело ответа сервера и собирает APIError.
//
// Если тело — ErrorResponse, берём error/message из него,
// иначе текст тела целиком (или res.Status, если тело пустое).
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var er sharedModels.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Message != "" {
		return &APIError{Status: res.StatusCode, Kind: er.Error, Message: er.Message}
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return &APIError{Status: res.StatusCode, Message: msg}
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Если resp == nil — ничего не делает. Пустое тело (io.EOF) не ошибка.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do выполняет запрос к серверу.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/api/v1/users/1").
//   - req: объект для сериализации в JSON. Если req == nil, тело не отправляется
//     и Content-Type не устанавливается.
//   - resp: куда декодировать JSON-ответ. Если resp == nil, тело не декодируется.
func (c *Client) do(ctx context.Context, method, path string, req any, resp any) error {
	var body io.Reader
	if req != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
		body = &buf
	}

	r, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	// 204/пустое тело — ок
	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// PostJSON выполняет POST-запрос, сериализуя req в JSON.
func (c *Client) PostJSON(ctx context.Context, path string, req any, resp any) error {
	return c.do(ctx, http.MethodPost, path, req, resp)
}

// GetJSON выполняет GET-запрос и (опционально) декодирует JSON-ответ.
func (c *Client) GetJSON(ctx context.Context, path string, resp any) error {
	return c.do(ctx, http.MethodGet, path, nil, resp)
}

// PutJSON выполняет PUT-запрос. req == nil — без тела
// (так работает ReplyStamp).
func (c *Client) PutJSON(ctx context.Context, path string, req any, resp any) error {
	return c.do(ctx, http.MethodPut, path, req, resp)
}

// Health проверяет доступность сервера и его базы.
func (c *Client) Health(ctx context.Context) (sharedModels.HealthResponse, error) {
	var resp sharedModels.HealthResponse
	err := c.GetJSON(ctx, "/health", &resp)
	return resp, err
}
