package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BubsLB/airdropbreakdown/conf"
	"github.com/BubsLB/airdropbreakdown/controller"
	"github.com/BubsLB/airdropbreakdown/controller/middleware"
	"github.com/BubsLB/airdropbreakdown/database"
	"github.com/BubsLB/airdropbreakdown/service/dataset_service"
	"github.com/BubsLB/airdropbreakdown/service/eligibility_service"

	"github.com/sirupsen/logrus"
)

var (
	ENV        string
	configPath string
)

var logger = logrus.StandardLogger().WithField("module", "checker")

func init() {
	flag.StringVar(&ENV, "env", "mainnet", "Environment: loc/mainnet/testnet/example")
	flag.StringVar(&configPath, "config", "", "Config file path, overrides -env")
}

// @title           Airdrop Eligibility Checker API
// @version         1.0
// @description     Validates wallet addresses and returns their airdrop allocation breakdown

// @host      localhost:7291
// @BasePath  /api/v1

// @schemes https http

func main() {
	// Initialize all components
	loader, srv, cleanup := initAll()
	defer cleanup()

	// Load eligibility data in the background, checks answer "still loading" meanwhile
	loader.Start(context.Background())

	// Start HTTP API service (in goroutine)
	go startServer(srv)
	logger.Info("Airdrop checker API service started successfully")

	// Wait for shutdown signal
	waitForShutdown()

	logger.Info("Shutting down airdrop checker...")

	// Gracefully shutdown HTTP service
	shutdownServer(srv)

	logger.Info("Server exited")
}

// initEnv initialize environment
func initEnv() {
	env, err := conf.ParseEnvironment(ENV)
	if err != nil {
		logger.Fatalf("Invalid -env: %v", err)
	}
	conf.SystemEnvironmentEnum = env
}

// initAll initialize all components
func initAll() (*dataset_service.Loader, *http.Server, func()) {
	// Parse command line parameters
	flag.Parse()

	// Initialize configuration
	var err error
	if configPath != "" {
		err = conf.InitConfigFile(configPath)
	} else {
		initEnv()
		err = conf.InitConfig()
	}
	if err != nil {
		logger.Fatalf("Failed to initialize config: %v", err)
	}
	if err := conf.InitLogger(); err != nil {
		logger.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Infof("Configuration loaded: env=%s, net=%s, port=%s, layout=%s, source=%s",
		ENV, conf.Cfg.Net, conf.Cfg.Port, conf.Cfg.Dataset.Layout, conf.Cfg.Dataset.Source)

	// Dataset source: published documents or the imported database copy
	source, err := dataset_service.NewSourceFromConfig()
	if err != nil {
		logger.Fatalf("Failed to initialize dataset source: %v", err)
	}
	loader := dataset_service.NewLoader(source)

	checkService, err := eligibility_service.NewCheckServiceFromConfig(loader)
	if err != nil {
		logger.Fatalf("Failed to create check service: %v", err)
	}

	stopCleanup := make(chan struct{})
	limiter := middleware.NewRateLimiter(conf.Cfg.Checker.RateLimit, conf.Cfg.Checker.RateBurst, conf.Cfg.Checker.ProxyCount)
	limiter.StartCleanup(stopCleanup)

	router := controller.SetupRouter(checkService, loader, limiter)

	srv := &http.Server{
		Addr:    ":" + conf.Cfg.Port,
		Handler: router,
	}

	cleanup := func() {
		close(stopCleanup)
		if err := database.CloseDatabase(); err != nil {
			logger.Errorf("Failed to close database: %v", err)
		}
	}

	return loader, srv, cleanup
}

func startServer(srv *http.Server) {
	logger.Infof("Airdrop checker API service starting on port %s...", conf.Cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

func waitForShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
}

func shutdownServer(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
}
