package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portal/internal/app/dto"
	"portal/internal/app/repository"
	"portal/internal/app/resolve"
)

// ============ ДОМЕН БИЗНЕС-ПРОЦЕССЫ ============

// GetProcesses получает список бизнес-процессов
// @Summary Получение списка процессов
// @Description Возвращает сводки процессов, доступных роли пользователя, новые первыми
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/processes [get]
func (h *APIHandler) GetProcesses(c *gin.Context) {
	_, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	views, err := h.Resolver.List(c.Request.Context(), userRole)
	if err != nil {
		logrus.Error("Error listing processes: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения процессов")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"processes": views,
		"total":     len(views),
	})
}

// GetProcess получает один бизнес-процесс
// @Summary Получение процесса по ID
// @Description Возвращает процесс с шагами и ссылками на существующие материалы
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID процесса"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/processes/{id} [get]
func (h *APIHandler) GetProcess(c *gin.Context) {
	_, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	view, err := h.Resolver.Process(c.Request.Context(), c.Param("id"), userRole)
	if err != nil {
		switch {
		case errors.Is(err, resolve.ErrNotFound):
			h.errorResponse(c, http.StatusNotFound, "Процесс не найден")
		case errors.Is(err, resolve.ErrForbidden):
			h.errorResponse(c, http.StatusForbidden, "Недостаточно прав")
		default:
			logrus.Error("Error resolving process: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения процесса")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"process": view})
}

// CreateProcess создает бизнес-процесс
// @Summary Создание процесса
// @Description Создает процесс с шагами, номера шагов назначаются по порядку массива (только для админов)
// @Tags Processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProcessRequest true "Данные процесса"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/processes [post]
func (h *APIHandler) CreateProcess(c *gin.Context) {
	var req dto.CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	process, err := h.Repository.CreateProcess(req.Name, req.Description, req.Departments, req.AllowedRoles, stepInputs(req.Steps))
	if err != nil {
		logrus.Error("Error creating process: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания процесса")
		return
	}

	view, err := h.Resolver.Process(c.Request.Context(), process.ID, roleFromContext(c))
	if err != nil {
		logrus.Error("Error resolving created process: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания процесса")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"process": view})
}

// UpdateProcess обновляет процесс, целиком заменяя его шаги
// @Summary Обновление процесса
// @Description Обновляет поля процесса и заменяет все его шаги в одной транзакции (только для админов)
// @Tags Processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID процесса"
// @Param request body dto.UpdateProcessRequest true "Данные процесса"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/processes/{id} [put]
func (h *APIHandler) UpdateProcess(c *gin.Context) {
	var req dto.UpdateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	id := c.Param("id")
	_, err := h.Repository.ReplaceProcess(c.Request.Context(), id, req.Name, req.Description, req.Departments, req.AllowedRoles, stepInputs(req.Steps))
	if err != nil {
		h.notFoundOrInternal(c, err, "Процесс не найден")
		return
	}

	view, err := h.Resolver.Process(c.Request.Context(), id, roleFromContext(c))
	if err != nil {
		logrus.Error("Error resolving updated process: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления процесса")
		return
	}

	c.JSON(http.StatusOK, gin.H{"process": view})
}

// DeleteProcess удаляет процесс
// @Summary Удаление процесса
// @Description Удаляет процесс вместе с шагами (только для админов)
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID процесса"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/processes/{id} [delete]
func (h *APIHandler) DeleteProcess(c *gin.Context) {
	if err := h.Repository.DeleteProcess(c.Param("id")); err != nil {
		h.notFoundOrInternal(c, err, "Процесс не найден")
		return
	}

	h.successResponse(c, http.StatusOK, "Процесс удален", nil)
}

// stepInputs отбрасывает присланные step_number: позиция в массиве авторитетна
func stepInputs(steps []dto.StepRequest) []repository.StepInput {
	out := make([]repository.StepInput, len(steps))
	for i, s := range steps {
		out[i] = repository.StepInput{
			Title:             s.Title,
			Description:       s.Description,
			Responsible:       s.Responsible,
			Duration:          s.Duration,
			RelatedContentIDs: s.RelatedContentIDs,
		}
	}
	return out
}
