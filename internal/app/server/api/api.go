//регистрация, аутентификация пользователей;
//эталонное хранилище коллекций пространств и предметов;
//выдача коллекций клиентам для синхронизации локального состояния.

//POST /api/auth/register  # Регистрация (публичный)
//POST /api/auth/login     # Вход (публичный)
//GET  /api/auth/me        # Текущий пользователь (auth)
//GET  /spaces             # Список пространств
//POST /spaces             # Создать пространство
//PATCH /spaces/{id}       # Обновить пространство
//GET  /items              # Список предметов
//POST /items              # Создать предмет
//PATCH /items/{id}        # Обновить предмет
//DELETE /items/{id}       # Удалить предмет

package api

import (
	healthAPI "boxmate/internal/app/server/api/http/health"
	itemAPI "boxmate/internal/app/server/api/http/item"
	"boxmate/internal/app/server/api/http/middleware"
	"boxmate/internal/app/server/api/http/middleware/auth"
	"boxmate/internal/app/server/api/http/middleware/logger"
	spaceAPI "boxmate/internal/app/server/api/http/space"
	userAPI "boxmate/internal/app/server/api/http/user"
	"boxmate/internal/domain/item"
	"boxmate/internal/domain/session"
	"boxmate/internal/domain/space"
	"boxmate/internal/domain/user"
	"boxmate/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Space  *spaceAPI.Handler
	Item   *itemAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Box Mate Store API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Space.SetupRoutes(API)
	h.Item.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewPasswordValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	publicMW := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, userRepo.FindByID, log, publicMW, middlewares.GetAllAndClear())

	spaceRepo := postgres.NewSpaceRepository(storage, log)
	spaceService := space.NewService(spaceRepo, log)
	middlewares.Add(loggerMW.Middleware())
	spaceHandler := spaceAPI.NewHandler(spaceService, log, middlewares.GetAllAndClear())

	itemRepo := postgres.NewItemRepository(storage, log)
	itemService := item.NewService(itemRepo, log)
	middlewares.Add(loggerMW.Middleware())
	itemHandler := itemAPI.NewHandler(itemService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Space:  spaceHandler,
		Item:   itemHandler,
	}
}
