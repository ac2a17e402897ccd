package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portal/internal/app/access"
	"portal/internal/app/ds"
	"portal/internal/app/dto"
)

// ============ ДОМЕН КАТЕГОРИИ ============

// GetCategories получает список категорий
// @Summary Получение списка категорий
// @Description Возвращает категории, доступные роли пользователя, по алфавиту
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/categories [get]
func (h *APIHandler) GetCategories(c *gin.Context) {
	_, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	categories, err := h.Repository.GetCategories()
	if err != nil {
		logrus.Error("Error getting categories: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения категорий")
		return
	}

	counts, err := h.Repository.ContentCountByCategory()
	if err != nil {
		logrus.Error("Error counting content: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения категорий")
		return
	}

	// Фильтруем категории по роли пользователя
	dtoCategories := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		if !access.IsVisible(category.AllowedRoles, userRole) {
			continue
		}
		dtoCategories = append(dtoCategories, dto.CategoryResponse{
			ID:           category.ID,
			Slug:         category.Slug,
			Name:         category.Name,
			Description:  category.Description,
			Icon:         category.Icon,
			AllowedRoles: category.AllowedRoles,
			ContentCount: counts[category.ID],
		})
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: dtoCategories,
		Total:      len(dtoCategories),
	})
}

// GetCategory получает категорию по slug вместе с её материалами
// @Summary Получение категории
// @Description Возвращает категорию и список её материалов
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Slug категории"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/categories/{slug} [get]
func (h *APIHandler) GetCategory(c *gin.Context) {
	_, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	slug := c.Param("slug")
	category, err := h.Repository.GetCategoryBySlug(slug)
	if err != nil {
		logrus.Error("Error getting category: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения категории")
		return
	}
	if category == nil {
		h.errorResponse(c, http.StatusNotFound, "Категория не найдена")
		return
	}

	if !access.IsVisible(category.AllowedRoles, userRole) {
		h.errorResponse(c, http.StatusForbidden, "Недостаточно прав")
		return
	}

	contents, err := h.Repository.ContentList(category.ID, "")
	if err != nil {
		logrus.Error("Error getting category content: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения материалов")
		return
	}

	dtoContents := make([]dto.ContentResponse, len(contents))
	for i, content := range contents {
		dtoContents[i] = h.contentResponse(content, category.Slug)
	}

	c.JSON(http.StatusOK, gin.H{
		"category": dto.CategoryResponse{
			ID:           category.ID,
			Slug:         category.Slug,
			Name:         category.Name,
			Description:  category.Description,
			Icon:         category.Icon,
			AllowedRoles: category.AllowedRoles,
			ContentCount: int64(len(contents)),
		},
		"content": dtoContents,
	})
}

// CreateCategory создает новую категорию
// @Summary Создание категории
// @Description Создает новую категорию (только для админов)
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "Данные категории"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/categories [post]
func (h *APIHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	// Повторный slug — ошибка клиента, а не сервера
	existing, err := h.Repository.GetCategoryBySlug(req.Slug)
	if err != nil {
		logrus.Error("Error checking category: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания категории")
		return
	}
	if existing != nil {
		h.errorResponse(c, http.StatusBadRequest, "Категория с таким slug уже существует")
		return
	}

	icon := req.Icon
	if icon == "" {
		icon = "folder"
	}

	category, err := h.Repository.CreateCategory(req.Slug, req.Name, req.Description, icon, req.AllowedRoles)
	if err != nil {
		logrus.Error("Error creating category: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания категории")
		return
	}

	c.JSON(http.StatusCreated, dto.CategoryResponse{
		ID:           category.ID,
		Slug:         category.Slug,
		Name:         category.Name,
		Description:  category.Description,
		Icon:         category.Icon,
		AllowedRoles: category.AllowedRoles,
	})
}

// UpdateCategory обновляет категорию
// @Summary Обновление категории
// @Description Частично обновляет категорию по slug (только для админов)
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Slug категории"
// @Param request body dto.UpdateCategoryRequest true "Данные для обновления"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/categories/{slug} [patch]
func (h *APIHandler) UpdateCategory(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.AllowedRoles != nil {
		updates["allowed_roles"] = *req.AllowedRoles
	}

	category, err := h.Repository.UpdateCategory(slug, updates)
	if err != nil {
		h.notFoundOrInternal(c, err, "Категория не найдена")
		return
	}

	c.JSON(http.StatusOK, dto.CategoryResponse{
		ID:           category.ID,
		Slug:         category.Slug,
		Name:         category.Name,
		Description:  category.Description,
		Icon:         category.Icon,
		AllowedRoles: category.AllowedRoles,
	})
}

// DeleteCategory удаляет категорию вместе с материалами
// @Summary Удаление категории
// @Description Удаляет категорию и каскадно все её материалы (только для админов)
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Slug категории"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/categories/{slug} [delete]
func (h *APIHandler) DeleteCategory(c *gin.Context) {
	slug := c.Param("slug")

	name, contentCount, err := h.Repository.DeleteCategory(slug)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Категория не найдена")
		return
	}

	h.successResponse(c, http.StatusOK,
		fmt.Sprintf("Категория %q и %d материалов успешно удалены", name, contentCount), nil)
}

// contentResponse преобразует материал в DTO
func (h *APIHandler) contentResponse(content ds.Content, categorySlug string) dto.ContentResponse {
	return dto.ContentResponse{
		ID:           content.ID,
		Title:        content.Title,
		Description:  content.Description,
		CategorySlug: categorySlug,
		Type:         content.Type,
		Duration:     content.Duration,
		Thumbnail:    content.Thumbnail,
		VideoURL:     content.VideoURL,
		Body:         content.Body,
		Views:        content.Views,
		CreatedAt:    content.CreatedAt,
	}
}
