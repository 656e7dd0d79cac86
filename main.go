package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"prestigeapi/bootstrap"
	"prestigeapi/config"
	"prestigeapi/controllers"
	_ "prestigeapi/docs"
	"prestigeapi/pkg/logger"
	"prestigeapi/repository"
	"prestigeapi/services/award"
	"prestigeapi/services/category"
	"prestigeapi/services/hub"
	"prestigeapi/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           prestigeapi
// @version         1.0
// @description     Prestige and VIP award ledger

// @BasePath  /v1

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	logger.Init(
		config.Cfg.LogFile,
		logger.ParseLevel(config.Cfg.LogLevel),
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)

	// 3) Connect DB (GORM) and seed categories
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if err := bootstrap.LoadData(); err != nil {
		log.Fatalf("Load data error: %v", err)
	}

	// 4) Wire repositories and services
	db := config.DB
	baseRepo := repository.NewBaseRepository(db)
	awardRepo := repository.NewAwardRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	actionRepo := repository.NewActionRepository(db)

	prestigeEngine := award.NewEngine(award.Prestige, categoryRepo)
	vipEngine := award.NewEngine(award.VIP, categoryRepo)

	controllers.SetPrestigeServices(
		award.NewLifecycleService(award.Prestige, prestigeEngine, baseRepo, awardRepo, actionRepo),
		award.NewQueryService(award.Prestige, awardRepo),
	)
	controllers.SetVIPServices(
		award.NewLifecycleService(award.VIP, vipEngine, baseRepo, awardRepo, actionRepo),
		award.NewQueryService(award.VIP, awardRepo),
	)
	controllers.SetCategoryService(category.NewService(categoryRepo))

	hubClient := hub.NewClient(config.Cfg.HubBaseURL, config.Cfg.HubTimeout)

	// 5) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	v1 := router.Group("/v1")
	v1.Use(hub.Authenticate(hubClient))
	{
		controllers.RegisterPrestigeRoutes(v1)
		controllers.RegisterVIPRoutes(v1)
		controllers.RegisterCategoryRoutes(v1)
	}

	// 6) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 7) Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal, exiting")
		os.Exit(0)
	}()

	// 8) Run
	logger.Infof("Starting server at port %s", config.Cfg.Port)
	router.Run("0.0.0.0:" + config.Cfg.Port)
}
