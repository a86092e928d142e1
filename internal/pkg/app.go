package pkg

import (
	"context"
	"fmt"

	"pos-backend/internal/app/config"
	"pos-backend/internal/app/dsn"
	"pos-backend/internal/app/handler"
	"pos-backend/internal/app/middleware"
	"pos-backend/internal/app/redis"
	"pos-backend/internal/app/repository"
	"pos-backend/internal/app/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config         *config.Config
	Router         *gin.Engine
	APIHandler     *handler.APIHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// NewApp собирает приложение: конфиг, БД, Redis, MinIO, обработчики
func NewApp(ctx context.Context) (*Application, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфигурацию: %w", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		return nil, fmt.Errorf("не удалось инициализировать репозиторий: %w", err)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к redis: %w", err)
	}

	// MinIO необязателен: без него недоступна только загрузка чеков
	var minioClient *storage.MinIOClient
	if cfg.MinIO.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(
			cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey,
			cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			logrus.Warnf("MinIO недоступен, загрузка чеков отключена: %v", err)
			minioClient = nil
		}
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	return &Application{
		Config:         cfg,
		Router:         router,
		APIHandler:     apiHandler,
		AuthMiddleware: authMiddleware,
	}, nil
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.APIHandler.RegisterAPIRoutes(a.Router, a.AuthMiddleware)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
