package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Сервер запускается и без MinIO; маршрут загрузки обложки при этом
// должен отвечать 503, а не падать.
func TestUploadContentThumbnail_StorageDisabled(t *testing.T) {
	h := &APIHandler{MinIOClient: nil}

	c, w := newTestContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/content/abc/thumbnail", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.UploadContentThumbnail(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "Загрузка обложек отключена", resp.Message)
}
