package main

import (
	"context"
	"database/sql"
	"log"

	"toystore-be/internal/admin"
	"toystore-be/internal/cart"
	"toystore-be/internal/catalog"
	"toystore-be/internal/config"
	"toystore-be/internal/db"
	"toystore-be/internal/handler"
	"toystore-be/internal/logger"
	"toystore-be/internal/order"
	"toystore-be/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Swappable for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = func(engine *gin.Engine, addr string) error { return engine.Run(addr) }
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	engine := newServer(cfg, database, newSessionStore(cfg))

	log.Printf("🚀 server running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(engine, ":"+cfg.AppPort)
}

// newServer wires the repositories, services and handlers into one engine.
func newServer(cfg *config.Config, database *sql.DB, sessionStore session.Store) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, catalogRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartSvc, catalogRepo)

	adminRepo := admin.NewRepository(database)
	adminSvc := admin.NewService(adminRepo)

	sessions := session.NewManager(sessionStore)

	router := handler.NewRouter(
		handler.NewCartHandler(cartSvc, orderSvc, sessions),
		handler.NewProductHandler(catalogSvc),
		handler.NewAuthHandler(adminSvc),
		handler.NewAdminHandler(catalogSvc, orderSvc),
	)

	return router.Setup()
}

// newSessionStore picks Redis when REDIS_ADDR is configured, an in-process
// store otherwise. Single-instance deployments work fine without Redis;
// sessions just do not survive a restart.
func newSessionStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		logger.L().Info("no REDIS_ADDR configured, using in-memory session store")
		return session.NewMemoryStore()
	}

	store := session.NewRedisStore(session.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := store.Ping(context.Background()); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	logger.L().Info("session store connected", zap.String("redis_addr", cfg.RedisAddr))
	return store
}
