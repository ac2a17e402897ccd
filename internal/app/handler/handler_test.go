package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portal/internal/app/dto"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestNotFoundOrInternal(t *testing.T) {
	h := &APIHandler{}

	t.Run("отсутствующая запись даёт 404", func(t *testing.T) {
		c, w := newTestContext(t)
		h.notFoundOrInternal(c, gorm.ErrRecordNotFound, "Материал не найден")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Материал не найден", decodeError(t, w).Message)
	})

	t.Run("обёрнутая ошибка тоже распознаётся", func(t *testing.T) {
		c, w := newTestContext(t)
		err := fmt.Errorf("replace steps: %w", gorm.ErrRecordNotFound)
		h.notFoundOrInternal(c, err, "Процесс не найден")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("сбой БД не маскируется под 404", func(t *testing.T) {
		c, w := newTestContext(t)
		h.notFoundOrInternal(c, errors.New("connection refused"), "Материал не найден")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Внутренняя ошибка сервера", decodeError(t, w).Message)
	})
}
