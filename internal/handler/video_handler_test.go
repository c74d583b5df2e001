package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediavault/internal/dto"
	"mediavault/internal/models"
	"mediavault/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVideoRouter(svc service.VideoService) *gin.Engine {
	h := NewVideoHandler(svc)
	router := gin.New()
	videos := router.Group("/videos")
	videos.GET("", h.List)
	videos.GET("/:id", h.GetByID)
	videos.GET("/genre/:genre", h.ListByGenre)
	videos.POST("", asUser(7, "studio", models.RoleCreator), h.Upload)
	return router
}

func TestVideoListEmpty(t *testing.T) {
	svc := &fakeVideoService{summaries: []dto.VideoSummary{}}
	router := newVideoRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	assert.Equal(t, 1, svc.listAllCalls)
}

func TestVideoListDispatchesSearch(t *testing.T) {
	svc := &fakeVideoService{summaries: []dto.VideoSummary{{ID: 1, Title: "Hit"}}}
	router := newVideoRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos?q=hit", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hit", svc.searchedWith)
	assert.Zero(t, svc.listAllCalls)
	assert.Contains(t, w.Body.String(), `"title":"Hit"`)
}

func TestVideoGetByID(t *testing.T) {
	svc := &fakeVideoService{detail: &dto.VideoDetail{
		VideoSummary:  dto.VideoSummary{ID: 3, Title: "Detail"},
		Comments:      []dto.CommentResponse{},
		AverageRating: 4.5,
		RatingCount:   2,
	}}
	router := newVideoRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"averageRating":4.5`)
	assert.Contains(t, w.Body.String(), `"ratingCount":2`)
	assert.Contains(t, w.Body.String(), `"comments":[]`)
}

func TestVideoGetByIDNotFound(t *testing.T) {
	svc := &fakeVideoService{err: service.ErrVideoNotFound}
	router := newVideoRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVideoGetByIDBadID(t *testing.T) {
	router := newVideoRouter(&fakeVideoService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVideoListByGenre(t *testing.T) {
	svc := &fakeVideoService{summaries: []dto.VideoSummary{{ID: 1, Genre: "Action"}}}
	router := newVideoRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/genre/Action", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Action", svc.genre)
}

func multipartUpload(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withFile {
		part, err := writer.CreateFormFile("videoFile", "clip.mp4")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake video bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestVideoUpload(t *testing.T) {
	svc := &fakeVideoService{uploadRes: &dto.UploadVideoResponse{
		ID:      10,
		BlobURL: "https://blobs.example.com/clip.mp4",
		Message: "Video uploaded successfully",
	}}
	router := newVideoRouter(svc)

	body, contentType := multipartUpload(t, map[string]string{
		"title": "Clip",
		"genre": "Action",
	}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(7), svc.uploadedBy)
	assert.Equal(t, "clip.mp4", svc.uploadedFile)
	assert.Contains(t, w.Body.String(), `"blobUrl"`)
}

func TestVideoUploadMissingFile(t *testing.T) {
	svc := &fakeVideoService{}
	router := newVideoRouter(svc)

	body, contentType := multipartUpload(t, map[string]string{"title": "Clip"}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.uploadedFile)
}

func TestVideoUploadMissingTitle(t *testing.T) {
	router := newVideoRouter(&fakeVideoService{})

	body, contentType := multipartUpload(t, map[string]string{"genre": "Action"}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
