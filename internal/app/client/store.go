package client

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

	"golang.org/x/exp/slog"

	"boxmate/internal/app/client/config"
)

const userAgent = "BoxMate-Client/1.0"

// remoteSpace - представление пространства в удалённом хранилище.
type remoteSpace struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// remoteItem - представление предмета в удалённом хранилище.
// Хранилище выдаёт собственный идентификатор в поле id.
type remoteItem struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Desc          string   `json:"desc"`
	Box           string   `json:"box"`
	ParentID      string   `json:"parentId,omitempty"`
	Image         string   `json:"image,omitempty"`
	Collaborators []string `json:"collaborators,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}

// AuthResponse - ответ хранилища на вход или регистрацию.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// storeClient - HTTP-клиент удалённого хранилища коллекций.
type storeClient struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
	token   string
}

func newStoreClient(cfg *config.Config, log *slog.Logger) *storeClient {
	scheme := "http"
	if cfg.EnableTLS {
		scheme = "https"
	}
	addr := strings.TrimSuffix(cfg.StoreAddress, "/")
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return &storeClient{
			client:  &http.Client{Timeout: 30 * time.Second},
			log:     log,
			baseURL: addr,
		}
	}
	return &storeClient{
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log,
		baseURL: fmt.Sprintf("%s://%s", scheme, addr),
	}
}

// SetToken устанавливает токен авторизации для последующих запросов
func (c *storeClient) SetToken(token string) {
	c.token = token
}

// doRequest выполняет HTTP-запрос с JSON-телом и авторизацией
func (c *storeClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

// parseResponse декодирует ответ хранилища или возвращает RemoteStoreError
func (c *storeClient) parseResponse(resp *http.Response, dst any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug("хранилище вернуло ошибку",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)),
		)
		return &RemoteStoreError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if dst == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("ошибка разбора ответа: %w", err)
	}

	return nil
}

// ListSpaces возвращает все пространства из хранилища
func (c *storeClient) ListSpaces(ctx context.Context) ([]remoteSpace, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/spaces", nil)
	if err != nil {
		return nil, err
	}

	var spaces []remoteSpace
	if err := c.parseResponse(resp, &spaces); err != nil {
		return nil, err
	}

	return spaces, nil
}

// CreateSpace создаёт пространство в хранилище
func (c *storeClient) CreateSpace(ctx context.Context, sp remoteSpace) (*remoteSpace, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/spaces", sp)
	if err != nil {
		return nil, err
	}

	var created remoteSpace
	if err := c.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// PatchSpace частично обновляет пространство по идентификатору
func (c *storeClient) PatchSpace(ctx context.Context, id string, patch map[string]any) error {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/spaces/"+url.PathEscape(id), patch)
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}

// ListItems возвращает все предметы из хранилища
func (c *storeClient) ListItems(ctx context.Context) ([]remoteItem, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/items", nil)
	if err != nil {
		return nil, err
	}

	var items []remoteItem
	if err := c.parseResponse(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateItem создаёт предмет в хранилище
func (c *storeClient) CreateItem(ctx context.Context, it remoteItem) (*remoteItem, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/items", it)
	if err != nil {
		return nil, err
	}

	var created remoteItem
	if err := c.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// PatchItem частично обновляет предмет по идентификатору
func (c *storeClient) PatchItem(ctx context.Context, id string, patch map[string]any) error {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/items/"+url.PathEscape(id), patch)
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}

// DeleteItem удаляет предмет по идентификатору
func (c *storeClient) DeleteItem(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/items/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}

// Login выполняет вход пользователя
func (c *storeClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := c.parseResponse(resp, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// Register регистрирует нового пользователя
func (c *storeClient) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := c.parseResponse(resp, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// Me возвращает данные текущего пользователя
func (c *storeClient) Me(ctx context.Context) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := c.parseResponse(resp, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// HealthCheck проверяет доступность хранилища
func (c *storeClient) HealthCheck(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}
