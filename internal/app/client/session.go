package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// UserInfo - данные пользователя, сохраняемые между запусками
type UserInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// sessionStore сохраняет токен и данные пользователя в файлах
// конфигурационной директории.
type sessionStore struct {
	tokenPath string
	userPath  string
}

func newSessionStore(tokenPath, userPath string) *sessionStore {
	return &sessionStore{tokenPath: tokenPath, userPath: userPath}
}

// Token возвращает сохранённый токен или пустую строку
func (s *sessionStore) Token() (string, error) {
	data, err := os.ReadFile(s.tokenPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}
	return string(data), nil
}

// SaveToken сохраняет токен с правами доступа только для владельца
func (s *sessionStore) SaveToken(token string) error {
	if err := os.WriteFile(s.tokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}
	return nil
}

// ClearToken удаляет токен и данные пользователя
func (s *sessionStore) ClearToken() error {
	if err := os.Remove(s.tokenPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}
	if err := os.Remove(s.userPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ошибка удаления данных пользователя: %w", err)
	}
	return nil
}

// User возвращает сохранённые данные пользователя или nil
func (s *sessionStore) User() (*UserInfo, error) {
	data, err := os.ReadFile(s.userPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка чтения данных пользователя: %w", err)
	}

	var info UserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("ошибка разбора данных пользователя: %w", err)
	}
	return &info, nil
}

// SaveUser сохраняет данные пользователя
func (s *sessionStore) SaveUser(info *UserInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("ошибка сериализации данных пользователя: %w", err)
	}
	if err := os.WriteFile(s.userPath, data, 0600); err != nil {
		return fmt.Errorf("ошибка сохранения данных пользователя: %w", err)
	}
	return nil
}
