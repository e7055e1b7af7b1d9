package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"freshmart-backend/controllers"
	"freshmart-backend/database"
	"freshmart-backend/logger"
	"freshmart-backend/middleware"
	"freshmart-backend/repository"
	"freshmart-backend/routes"
	"freshmart-backend/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Datastores ---

	if err := database.ConnectWithConfig(cfg.MongoURI, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			zap.L().Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		redisOpts = &redis.Options{Addr: "localhost:6379"}
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}()

	productRepo := repository.NewProductRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	if err := productRepo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Warn("Failed to ensure product indexes", zap.Error(err))
	}
	if err := categoryRepo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Warn("Failed to ensure category indexes", zap.Error(err))
	}

	// --- Services ---

	uploadDriver, err := buildUploader(cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize upload driver", zap.Error(err), zap.String("driver", cfg.UploadDriver))
	}

	session := services.SessionConfig{
		CookieName: cfg.CookieName,
		MaxAge:     int(cfg.TokenTTL.Seconds()),
		Secure:     cfg.Env != "development",
	}
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	productService := services.NewProductService(productRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	catalogService := services.NewCatalogService(productRepo)

	// --- Controllers ---

	cache := controllers.NewCacheManager(redisClient)
	ctrl := routes.Controllers{
		Auth:     controllers.NewAuthController(authService, tokenService, session),
		Products: controllers.NewProductController(productService, cache),
		Category: controllers.NewCategoryController(categoryService, cache),
		Catalog:  controllers.NewCatalogController(catalogService, cache),
		Upload:   controllers.NewUploadController(uploadDriver),
		Admin:    controllers.NewAdminController(productService, categoryService),
	}

	// --- HTTP server ---

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTimeout(cfg.RequestTimeout))
	r.Use(middleware.SecurityHeaders())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, ctrl, session, tokenService)

	if cfg.UploadDriver == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Stopped gracefully")
}

func buildUploader(cfg *Config) (services.Uploader, error) {
	switch cfg.UploadDriver {
	case "s3":
		return services.NewS3Uploader(context.Background(), services.S3Config{
			Bucket:        cfg.S3Bucket,
			Prefix:        cfg.S3Prefix,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	case "local":
		return services.NewLocalUploader(cfg.UploadDir)
	default:
		return services.NewCloudinaryUploader(cfg.UploadFolder)
	}
}
