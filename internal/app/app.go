package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/bradleyplater/HockeyTrackerV2/internal/config"
	"github.com/bradleyplater/HockeyTrackerV2/internal/handler"
	"github.com/bradleyplater/HockeyTrackerV2/internal/middleware"
	"github.com/bradleyplater/HockeyTrackerV2/internal/platform/id"
	"github.com/bradleyplater/HockeyTrackerV2/internal/platform/keylock"
	"github.com/bradleyplater/HockeyTrackerV2/internal/platform/logging"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository/document"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository/memory"
	"github.com/bradleyplater/HockeyTrackerV2/internal/repository/postgres"
	"github.com/bradleyplater/HockeyTrackerV2/internal/service"
	"github.com/bradleyplater/HockeyTrackerV2/internal/validation"
	"github.com/bradleyplater/HockeyTrackerV2/migrations"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	store  repository.Store
	router http.Handler
	server *http.Server
	logger *zap.Logger
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(logging.ParseLevel(cfg.Log.Level))

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	if err := a.setupStorage(ctx); err != nil {
		return err
	}

	if err := a.setupServer(ctx); err != nil {
		return err
	}

	a.logger.Info("Application initialized successfully")
	return nil
}

// setupStorage выбирает хранилище документов по STORAGE_DRIVER
func (a *App) setupStorage(ctx context.Context) error {
	if a.config.Storage.Driver == config.StorageDriverMemory {
		a.store = memory.NewStore()
		a.logger.Warn("Using in-memory storage, data is lost on restart")
		return nil
	}

	if a.config.Database.AutoMigrate {
		if err := migrations.Up(a.config.Database.DSN()); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		a.logger.Info("Database schema is up to date")
	}

	if err := a.connectDB(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.store = postgres.NewStore(a.db)
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer(ctx context.Context) error {
	// Репозитории поверх хранилища документов
	playerRepo := document.NewPlayerRepository(a.store)
	teamRepo := document.NewTeamRepository(a.store)
	keyRepo := document.NewAPIKeyRepository(a.store)
	seasonRepo := document.NewSeasonRepository(a.store)

	// Сервисы
	ids := id.NewRandomGenerator()
	playerService := service.NewPlayerService(playerRepo, ids)
	teamService := service.NewTeamService(teamRepo, ids)

	var rosterOpts []service.RosterOption
	if a.config.Roster.SerializeByTeam {
		rosterOpts = append(rosterOpts, service.WithTeamLocker(keylock.New()))
		a.logger.Info("Roster changes are serialized per team")
	}
	rosterService := service.NewRosterService(teamRepo, playerRepo, a.logger.Named("roster"), rosterOpts...)

	seasonService := service.NewSeasonService(seasonRepo)
	authService := service.NewAuthService(
		keyRepo,
		ids,
		clockwork.NewRealClock(),
		a.config.Auth.JWTSecret,
		a.config.Auth.GetExpiration(),
	)

	// Первый API ключ берется из окружения
	seeded, err := authService.EnsureAPIKey(ctx, a.config.Auth.APIKey)
	if err != nil {
		return fmt.Errorf("failed to seed api key: %w", err)
	}
	if seeded {
		a.logger.Info("Seeded api key from environment")
	}

	// HTTP обработчики
	v := validation.New()
	httpLogger := a.logger.Named("http")
	authHandler := handler.NewAuthHandler(authService, httpLogger)
	playerHandler := handler.NewPlayerHandler(playerService, v, httpLogger)
	teamHandler := handler.NewTeamHandler(teamService, rosterService, v, httpLogger)
	seasonHandler := handler.NewSeasonHandler(seasonService, httpLogger)

	authMiddleware := middleware.AuthMiddleware(authService)

	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: a.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	}).Handler)

	r.Route("/api/v2", func(r chi.Router) {
		// Публичные эндпоинты
		r.Get("/liveness", handler.Liveness)
		r.Post("/auth/token", authHandler.IssueToken)
		r.Get("/seasons", seasonHandler.ListSeasons)

		// Защищенные эндпоинты (x-api-key или Bearer токен)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Route("/player", func(r chi.Router) {
				r.Post("/", playerHandler.CreatePlayer)
				r.Get("/", playerHandler.ListPlayers)
				r.Get("/{playerId}", playerHandler.GetPlayer)
				r.Delete("/{playerId}", playerHandler.DeletePlayer)
				r.Patch("/{playerId}/details", playerHandler.UpdatePlayerDetails)
			})

			r.Route("/team", func(r chi.Router) {
				r.Post("/", teamHandler.CreateTeam)
				r.Get("/", teamHandler.ListTeams)
				r.Get("/{teamId}", teamHandler.GetTeam)
				r.Patch("/addplayer/{teamId}", teamHandler.AddPlayer)
				r.Patch("/removeplayer/{teamId}", teamHandler.RemovePlayer)
			})
		})
	})

	a.router = r

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", zap.String("addr", addr))
	return nil
}

// Handler возвращает настроенный роутер
func (a *App) Handler() http.Handler {
	return a.router
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", zap.String("addr", a.server.Addr))
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	_ = a.logger.Sync()
	return nil
}
