package handler

import (
	"github.com/gin-gonic/gin"

	"portal/internal/app/middleware"
	"portal/internal/app/role"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		auth.GET("/me", authMiddleware.WithAuthCheck(), h.AuthHandler.GetUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(), h.AuthHandler.LogoutUser)
	}

	// ============ Категории (Categories) ============
	categories := api.Group("/categories")
	{
		// Для всех авторизованных пользователей (с фильтрацией по ролям)
		categories.GET("", authMiddleware.WithAuthCheck(), h.GetCategories)
		categories.GET("/:slug", authMiddleware.WithAuthCheck(), h.GetCategory)

		// Только для админов (управление категориями)
		categories.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateCategory)
		categories.PATCH("/:slug", authMiddleware.WithAuthCheck(role.Admin), h.UpdateCategory)
		categories.DELETE("/:slug", authMiddleware.WithAuthCheck(role.Admin), h.DeleteCategory)
	}

	// ============ Материалы (Content) ============
	content := api.Group("/content")
	{
		content.GET("", authMiddleware.WithAuthCheck(), h.GetContentList)
		content.GET("/:id", authMiddleware.WithAuthCheck(), h.GetContent)
		content.PATCH("/:id/views", authMiddleware.WithAuthCheck(), h.IncrementContentViews)

		// Только для админов
		content.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateContent)
		content.PATCH("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateContent)
		content.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteContent)
		content.POST("/:id/thumbnail", authMiddleware.WithAuthCheck(role.Admin), h.UploadContentThumbnail)
	}

	// ============ Бизнес-процессы (Processes) ============
	processes := api.Group("/processes")
	{
		processes.GET("", authMiddleware.WithAuthCheck(), h.GetProcesses)
		processes.GET("/:id", authMiddleware.WithAuthCheck(), h.GetProcess)

		// Только для админов
		processes.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateProcess)
		processes.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateProcess)
		processes.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteProcess)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}
