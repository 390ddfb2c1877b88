package client

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"boxmate/internal/app/client/config"
)

// App - клиентское приложение: связывает клиент хранилища,
// синхронизатор, держатель снимка и файловую сессию.
type App struct {
	config *config.Config
	log    *slog.Logger
	store  *storeClient
	syncer *Synchronizer
	holder *SnapshotHolder
	sess   *sessionStore

	mu            sync.RWMutex
	authenticated bool
	user          *UserInfo
}

// New создает клиентское приложение и восстанавливает сессию,
// если токен был сохранён ранее.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	store := newStoreClient(cfg, log)
	syncer := NewSynchronizer(store, DefaultCatalog, log)

	cache, err := NewSnapshotCache(cfg.CachePath)
	if err != nil {
		log.Warn("локальный кэш недоступен, работаем без него", slog.String("error", err.Error()))
		cache = nil
	}

	app := &App{
		config: cfg,
		log:    log,
		store:  store,
		syncer: syncer,
		holder: NewSnapshotHolder(syncer, cache, log),
		sess:   newSessionStore(cfg.TokenPath, cfg.UserPath),
	}

	token, err := app.sess.Token()
	if err != nil {
		log.Warn("не удалось прочитать сохранённый токен", slog.String("error", err.Error()))
	} else if token != "" {
		store.SetToken(token)
		app.authenticated = true

		if info, err := app.sess.User(); err == nil && info != nil {
			app.user = info
		}
	}

	return app, nil
}

// IsAuthenticated сообщает, выполнен ли вход
func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// Holder возвращает держатель снимка состояния
func (a *App) Holder() *SnapshotHolder {
	return a.holder
}

// Login выполняет вход и сохраняет сессию
func (a *App) Login(ctx context.Context, email, password string) (*UserInfo, error) {
	auth, err := a.store.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("ошибка входа: %w", err)
	}

	return a.establishSession(auth)
}

// Register регистрирует пользователя и сохраняет сессию
func (a *App) Register(ctx context.Context, username, email, password string) (*UserInfo, error) {
	auth, err := a.store.Register(ctx, username, email, password)
	if err != nil {
		return nil, fmt.Errorf("ошибка регистрации: %w", err)
	}

	return a.establishSession(auth)
}

func (a *App) establishSession(auth *AuthResponse) (*UserInfo, error) {
	a.store.SetToken(auth.Token)

	info := &UserInfo{Username: auth.Username, Email: auth.Email}

	a.mu.Lock()
	a.authenticated = true
	a.user = info
	a.mu.Unlock()

	if err := a.sess.SaveToken(auth.Token); err != nil {
		a.log.Warn("не удалось сохранить токен", slog.String("error", err.Error()))
	}
	if err := a.sess.SaveUser(info); err != nil {
		a.log.Warn("не удалось сохранить данные пользователя", slog.String("error", err.Error()))
	}

	return info, nil
}

// Logout завершает сессию и удаляет сохранённый токен
func (a *App) Logout() error {
	a.store.SetToken("")

	a.mu.Lock()
	a.authenticated = false
	a.user = nil
	a.mu.Unlock()

	if err := a.sess.ClearToken(); err != nil {
		return err
	}
	return nil
}

// Whoami возвращает данные текущего пользователя: сперва из локальной
// сессии, при её отсутствии - запросом к хранилищу.
func (a *App) Whoami(ctx context.Context) (*UserInfo, error) {
	a.mu.RLock()
	authenticated := a.authenticated
	cached := a.user
	a.mu.RUnlock()

	if !authenticated {
		return nil, ErrNotAuthenticated
	}
	if cached != nil {
		return cached, nil
	}

	auth, err := a.store.Me(ctx)
	if err != nil {
		return nil, err
	}

	info := &UserInfo{Username: auth.Username, Email: auth.Email}

	a.mu.Lock()
	a.user = info
	a.mu.Unlock()

	return info, nil
}

// HealthCheck проверяет доступность удалённого хранилища
func (a *App) HealthCheck(ctx context.Context) error {
	return a.store.HealthCheck(ctx)
}
