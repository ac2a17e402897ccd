package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portal/internal/app/ds"
	"portal/internal/app/dto"
)

// ============ ДОМЕН МАТЕРИАЛЫ ============

// GetContentList получает список материалов
// @Summary Получение списка материалов
// @Description Возвращает материалы с фильтрацией по категории (slug) и типу, новые первыми
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param category query string false "Slug категории"
// @Param type query string false "Тип материала (video, article, instruction)"
// @Success 200 {object} dto.ContentListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/content [get]
func (h *APIHandler) GetContentList(c *gin.Context) {
	categorySlug := c.Query("category")
	contentType := c.Query("type")

	categoryID := ""
	if categorySlug != "" {
		category, err := h.Repository.GetCategoryBySlug(categorySlug)
		if err != nil {
			logrus.Error("Error getting category: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения материалов")
			return
		}
		if category == nil {
			h.errorResponse(c, http.StatusNotFound, "Категория не найдена")
			return
		}
		categoryID = category.ID
	}

	contents, err := h.Repository.ContentList(categoryID, contentType)
	if err != nil {
		logrus.Error("Error getting content: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения материалов")
		return
	}

	slugs, err := h.categorySlugs()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения материалов")
		return
	}

	dtoContents := make([]dto.ContentResponse, len(contents))
	for i, content := range contents {
		dtoContents[i] = h.contentResponse(content, slugs[content.CategoryID])
	}

	c.JSON(http.StatusOK, dto.ContentListResponse{
		Content: dtoContents,
		Total:   len(dtoContents),
	})
}

// GetContent получает один материал
// @Summary Получение материала по ID
// @Description Возвращает детальную информацию о материале
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID материала"
// @Success 200 {object} dto.ContentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/content/{id} [get]
func (h *APIHandler) GetContent(c *gin.Context) {
	content, err := h.Repository.ContentByID(c.Param("id"))
	if err != nil {
		logrus.Error("Error getting content: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения материала")
		return
	}
	if content == nil {
		h.errorResponse(c, http.StatusNotFound, "Материал не найден")
		return
	}

	slugs, err := h.categorySlugs()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения материала")
		return
	}

	c.JSON(http.StatusOK, h.contentResponse(*content, slugs[content.CategoryID]))
}

// CreateContent создает новый материал
// @Summary Создание материала
// @Description Создает новый обучающий материал (только для админов)
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateContentRequest true "Данные материала"
// @Success 201 {object} dto.ContentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/content [post]
func (h *APIHandler) CreateContent(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	category, err := h.Repository.GetCategoryBySlug(req.CategorySlug)
	if err != nil {
		logrus.Error("Error getting category: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания материала")
		return
	}
	if category == nil {
		h.errorResponse(c, http.StatusBadRequest, "Категория не найдена")
		return
	}

	content := ds.Content{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  category.ID,
		Type:        req.Type,
		Duration:    req.Duration,
		VideoURL:    req.VideoURL,
		Body:        req.Body,
	}
	if err := h.Repository.CreateContent(&content); err != nil {
		logrus.Error("Error creating content: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания материала")
		return
	}

	c.JSON(http.StatusCreated, h.contentResponse(content, category.Slug))
}

// UpdateContent обновляет материал
// @Summary Обновление материала
// @Description Частично обновляет материал (только для админов)
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID материала"
// @Param request body dto.UpdateContentRequest true "Данные для обновления"
// @Success 200 {object} dto.ContentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/content/{id} [patch]
func (h *APIHandler) UpdateContent(c *gin.Context) {
	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}

	content, err := h.Repository.UpdateContent(c.Param("id"), updates)
	if err != nil {
		h.notFoundOrInternal(c, err, "Материал не найден")
		return
	}

	slugs, err := h.categorySlugs()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления материала")
		return
	}

	c.JSON(http.StatusOK, h.contentResponse(*content, slugs[content.CategoryID]))
}

// DeleteContent удаляет материал
// @Summary Удаление материала
// @Description Удаляет материал вместе с его обложкой в MinIO (только для админов)
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID материала"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/content/{id} [delete]
func (h *APIHandler) DeleteContent(c *gin.Context) {
	id := c.Param("id")

	content, err := h.Repository.ContentByID(id)
	if err != nil || content == nil {
		h.errorResponse(c, http.StatusNotFound, "Материал не найден")
		return
	}

	if err := h.Repository.DeleteContent(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Материал не найден")
		return
	}

	// Обложка в MinIO больше не нужна; ошибка удаления не фатальна
	if content.Thumbnail != "" && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteFile(content.Thumbnail); err != nil {
			logrus.Warn("Error deleting thumbnail: ", err)
		}
	}

	h.successResponse(c, http.StatusOK, "Материал удален", nil)
}

// IncrementContentViews увеличивает счётчик просмотров
// @Summary Учёт просмотра материала
// @Description Увеличивает счётчик просмотров на единицу
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID материала"
// @Success 200 {object} dto.ContentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/content/{id}/views [patch]
func (h *APIHandler) IncrementContentViews(c *gin.Context) {
	content, err := h.Repository.IncrementViews(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Материал не найден")
		return
	}

	slugs, err := h.categorySlugs()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления материала")
		return
	}

	c.JSON(http.StatusOK, h.contentResponse(*content, slugs[content.CategoryID]))
}

// UploadContentThumbnail загружает обложку материала
// @Summary Загрузка обложки материала
// @Description Принимает файл изображения и сохраняет его в MinIO (только для админов)
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID материала"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/content/{id}/thumbnail [post]
func (h *APIHandler) UploadContentThumbnail(c *gin.Context) {
	// Сервер может работать без MinIO, тогда маршрут отвечает 503
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Загрузка обложек отключена")
		return
	}

	id := c.Param("id")

	content, err := h.Repository.ContentByID(id)
	if err != nil || content == nil {
		h.errorResponse(c, http.StatusNotFound, "Материал не найден")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл изображения не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	filename, err := h.MinIOClient.UploadThumbnail(data, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading thumbnail: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	// Прежняя обложка заменяется новой
	if content.Thumbnail != "" {
		if err := h.MinIOClient.DeleteFile(content.Thumbnail); err != nil {
			logrus.Warn("Error deleting old thumbnail: ", err)
		}
	}

	if err := h.Repository.SetThumbnail(id, filename); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения обложки")
		return
	}

	h.successResponse(c, http.StatusOK, "Обложка загружена", gin.H{"thumbnail": filename})
}

// categorySlugs возвращает отображение id категории -> slug
func (h *APIHandler) categorySlugs() (map[string]string, error) {
	categories, err := h.Repository.GetCategories()
	if err != nil {
		logrus.Error("Error getting categories: ", err)
		return nil, err
	}
	slugs := make(map[string]string, len(categories))
	for _, category := range categories {
		slugs[category.ID] = category.Slug
	}
	return slugs, nil
}
