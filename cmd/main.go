package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/okorolev/skillswap/config"
	_ "github.com/okorolev/skillswap/docs"
	"github.com/okorolev/skillswap/internal/app/auth"
	authhttp "github.com/okorolev/skillswap/internal/app/auth/transport/http"
	authusecase "github.com/okorolev/skillswap/internal/app/auth/usecase"
	"github.com/okorolev/skillswap/internal/app/swap"
	swapgorm "github.com/okorolev/skillswap/internal/app/swap/repo/gorm"
	swapmem "github.com/okorolev/skillswap/internal/app/swap/repo/mem"
	swaphttp "github.com/okorolev/skillswap/internal/app/swap/transport/http"
	swapusecase "github.com/okorolev/skillswap/internal/app/swap/usecase"
	"github.com/okorolev/skillswap/internal/app/user"
	usergorm "github.com/okorolev/skillswap/internal/app/user/repo/gorm"
	usermem "github.com/okorolev/skillswap/internal/app/user/repo/mem"
	userhttp "github.com/okorolev/skillswap/internal/app/user/transport/http"
	userusecase "github.com/okorolev/skillswap/internal/app/user/usecase"
	"github.com/okorolev/skillswap/internal/fixtures"
	"github.com/okorolev/skillswap/internal/infrastructure/httpx"
	"github.com/okorolev/skillswap/internal/infrastructure/logger"
	"github.com/okorolev/skillswap/internal/infrastructure/secure"
	"github.com/okorolev/skillswap/internal/infrastructure/system"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title           Skill Swap API
// @version         1.0
// @description     A marketplace where members trade skills with each other.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(cfg.LogLevel.ZeroLog())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Overload(".env"); err != nil {
		log.Debug().Err(err).Msg("failed to load .env file, using environment variables")
	}

	userRepo, swapRepo := buildStores(cfg.Store)

	timeGen := &system.TimeGenerator{}
	idGen := &system.UUIDv7Generator{}
	passwordHasher := secure.NewPasswordHasher()

	authCfg := config.GetAuthConfig()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		if authCfg.Mode == auth.ModeJWT {
			log.Fatal().Msg("JWT_SECRET is required in jwt auth mode")
		}
		// legacy mode never signs tokens; the codec just needs a key
		jwtSecret = "unused"
	}
	jwtCodec := secure.NewTokenCodec([]byte(jwtSecret))

	userCfg, userValidationCfg := config.GetUserConfigs()
	userValidator, err := user.NewValidator(userValidationCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create user validator")
	}
	userCore, err := user.NewCore(userRepo, passwordHasher, userValidator, userCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create user core")
	}

	authCore := auth.NewCore(userCore, passwordHasher, jwtCodec, idGen, timeGen, authCfg)
	swapCore := swap.NewCore(swapRepo, timeGen)

	userService := userusecase.NewService(userCore)
	userHandler := userhttp.NewHandler(userService)

	authService := authusecase.NewService(authCore, userCore)
	authHandler := authhttp.NewHandler(authService)

	swapService := swapusecase.NewService(swapCore)
	swapHandler := swaphttp.NewHandler(swapService)

	if cfg.Store.SeedDemo && cfg.Store.Driver == config.StoreMemory {
		if err := fixtures.Load(context.Background(), userRepo, swapRepo, timeGen.Now()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
		log.Info().Msg("demo fixtures loaded")
	}

	// --- set up chi router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(logger.Logger)
	r.Use(httpx.MaxBodyBytes(cfg.MaxBodySize))

	r.Route("/api", func(r chi.Router) {
		// without auth
		r.Get("/health", health)
		r.Post("/auth/register", authHandler.Register) // POST /api/auth/register
		r.Post("/auth/login", authHandler.Login)       // POST /api/auth/login

		r.Get("/users", userHandler.ListUsers)                                          // GET /api/users
		r.Get(fmt.Sprintf("/users/{%s}", userhttp.URLParamUserID), userHandler.GetUser) // GET /api/users/{user_id}

		// with auth
		r.Group(func(r chi.Router) {
			r.Use(authhttp.AuthMiddleware(authService))

			r.Put(fmt.Sprintf("/users/{%s}", userhttp.URLParamUserID), userHandler.UpdateUser) // PUT /api/users/{user_id}

			r.Route("/swaps", func(r chi.Router) {
				r.Get("/", swapHandler.ListMySwaps) // GET  /api/swaps
				r.Post("/", swapHandler.CreateSwap) // POST /api/swaps

				r.Put(fmt.Sprintf("/{%s}", swaphttp.URLParamSwapID), swapHandler.UpdateStatus) // PUT /api/swaps/{swap_id}
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Msg(fmt.Sprintf("starting server on :%s", cfg.Port))
	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(r.Context(), w, http.StatusOK, map[string]string{"message": "Skill Swap API is running!"})
}

func buildStores(cfg config.StoreConfig) (user.Repository, swap.Repository) {
	switch cfg.Driver {
	case config.StoreMemory, "":
		return usermem.NewRepository(), swapmem.NewRepository()
	case config.StorePostgres:
		password := os.Getenv("DB_PASSWORD")
		dsn := cfg.DatabaseDSN
		if password != "" {
			dsn = fmt.Sprintf("%s password=%s", dsn, password)
		}
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		return usergorm.NewRepository(db), swapgorm.NewRepository(db)
	default:
		log.Fatal().Msgf("unknown store driver %q", cfg.Driver)
		return nil, nil
	}
}
