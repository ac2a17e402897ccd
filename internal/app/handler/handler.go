package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"portal/internal/app/dto"
	"portal/internal/app/repository"
	"portal/internal/app/resolve"
	"portal/internal/app/role"
	"portal/internal/app/storage"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	Resolver    *resolve.Resolver
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, resolver *resolve.Resolver, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		Resolver:    resolver,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (string, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return "", role.User, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(string)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return "", r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

// roleFromContext возвращает роль из контекста запроса
func roleFromContext(c *gin.Context) role.Role {
	userRole, _ := c.Get("userRole")
	r, ok := userRole.(role.Role)
	if !ok {
		return role.User
	}
	return r
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

// notFoundOrInternal отвечает 404 только на отсутствующую запись,
// остальные ошибки БД логируются и отдаются как 500
func (h *APIHandler) notFoundOrInternal(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.errorResponse(c, http.StatusNotFound, notFoundMessage)
		return
	}
	logrus.Error("Database error: ", err)
	h.errorResponse(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
