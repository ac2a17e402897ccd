package api

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "portal/docs"
	"portal/internal/app/config"
	"portal/internal/app/dsn"
	"portal/internal/app/handler"
	"portal/internal/app/middleware"
	"portal/internal/app/redis"
	"portal/internal/app/repository"
	"portal/internal/app/resolve"
	"portal/internal/app/storage"
	"portal/internal/pkg"
)

// Разрешенные домены для браузерного клиента
var allowedOrigins = []string{
	"https://hanplaza-docs.ru",
	"https://www.hanplaza-docs.ru",
	"http://localhost:3000", // для локальной разработки
}

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("ошибка чтения конфигурации: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("ошибка инициализации репозитория: ", err)
	}

	ctx := context.Background()
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logrus.Fatal("ошибка подключения к Redis: ", err)
	}

	// MinIO не обязателен: без него недоступна только загрузка обложек
	var minioClient *storage.MinIOClient
	if cfg.Minio.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(
			cfg.Minio.Endpoint,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.Bucket,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			logrus.Fatal("ошибка подключения к MinIO: ", err)
		}
	} else {
		logrus.Warn("MINIO_ENDPOINT не задан, загрузка обложек отключена")
	}

	resolver := resolve.New(repo)
	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, resolver, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	apiHandler.RegisterAPIRoutes(r, authMiddleware)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app := pkg.NewApp(cfg, r, apiHandler)
	app.RunApp()

	log.Println("Server down")
}
