package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"nextparkapi/bootstrap"
	"nextparkapi/config"
	"nextparkapi/controllers"
	_ "nextparkapi/docs"
	"nextparkapi/pkg/logger"
	"nextparkapi/services"
	"nextparkapi/services/keygen"
	keygenmysql "nextparkapi/services/keygen/mysql"
	keygenoracle "nextparkapi/services/keygen/oracle"
	"nextparkapi/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           NextPark API
// @version         1.0
// @description     REST backend for motorcycle parking facility management

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting NextPark API with provider %s, log level %s",
		config.Cfg.DBProvider, config.Cfg.LogLevel)

	// 3) Connect DB (GORM) and migrate schema
	if err := config.ConnectDB(); err != nil {
		logger.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		logger.Fatalf("Database is nil after ConnectDB")
	}
	if err := bootstrap.Migrate(); err != nil {
		logger.Fatalf("Migration error: %v", err)
	}

	// 4) Build the key generation registry. Registration order matters:
	// the identity strategy must win for SQL Server before the sequence
	// strategy catches everything else.
	keys, err := buildKeyRegistry()
	if err != nil {
		logger.Fatalf("Key generation setup error: %v", err)
	}

	controllers.SetMotoService(services.NewMotoService(keys))
	controllers.SetVagaService(services.NewVagaService(keys))
	controllers.SetManutencaoService(services.NewManutencaoService(keys))
	controllers.SetAuthService(services.NewAuthService(keys))

	// 5) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	api := router.Group("/api")
	{
		controllers.RegisterMotoRoutes(api)
		controllers.RegisterVagaRoutes(api)
		controllers.RegisterManutencaoRoutes(api)
		controllers.RegisterAuthRoutes(api)
	}
	controllers.RegisterHealthRoutes(router)

	// 6) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 7) Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal, closing database connection...")
		if sqlDB, err := config.DB.DB(); err == nil {
			sqlDB.Close()
		}
		logger.Infof("Application shutdown complete")
		os.Exit(0)
	}()

	// 8) Run
	logger.Infof("Starting server at port %s", config.Cfg.ServerPort)
	router.Run("0.0.0.0:" + config.Cfg.ServerPort)
}

// buildKeyRegistry wires the per-engine key generation strategies over the
// active connection. Oracle probes real sequences; every other
// non-identity engine only has the table scan fallback.
func buildKeyRegistry() (*keygen.Registry, error) {
	sqlDB, err := config.DB.DB()
	if err != nil {
		return nil, err
	}

	var store keygen.SequenceStore
	if strings.Contains(strings.ToLower(config.Cfg.DBProvider), "oracle") {
		store = keygenoracle.NewStore(sqlDB)
	} else {
		store = keygenmysql.NewStore(sqlDB)
	}

	return keygen.NewRegistry(
		keygen.NewIdentityStrategy(),
		keygen.NewSequenceStrategy(store),
	), nil
}
