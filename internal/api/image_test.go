package api

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-api/backend/internal/mocks"
	"github.com/pageza/recipe-api/backend/internal/service"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func uploadRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "pancakes.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/recipes/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func imageRouter(svc service.IImageService) *gin.Engine {
	router := gin.New()
	router.POST("/recipes/images", NewImageHandler(svc).UploadImage)
	return router
}

func TestUploadImage(t *testing.T) {
	svc := new(mocks.MockImageService)
	svc.On("UploadRecipeImage", mock.Anything, "image/png", int64(len(pngHeader)), mock.Anything).
		Return("https://bucket.s3.us-east-1.amazonaws.com/recipes/abc.png", nil)

	w := httptest.NewRecorder()
	imageRouter(svc).ServeHTTP(w, uploadRequest(t, "image", pngHeader))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"imageUrl":"https://bucket.s3.us-east-1.amazonaws.com/recipes/abc.png"}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestUploadImageMissingFile(t *testing.T) {
	svc := new(mocks.MockImageService)

	w := httptest.NewRecorder()
	imageRouter(svc).ServeHTTP(w, uploadRequest(t, "photo", pngHeader))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UploadRecipeImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImageRejectedType(t *testing.T) {
	svc := new(mocks.MockImageService)
	svc.On("UploadRecipeImage", mock.Anything, "text/plain; charset=utf-8", mock.Anything, mock.Anything).
		Return("", &service.ValidationError{Messages: []string{`Unsupported image type "text/plain; charset=utf-8"`}})

	w := httptest.NewRecorder()
	imageRouter(svc).ServeHTTP(w, uploadRequest(t, "image", []byte("just some text")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported image type")
}

func TestUploadImageDisabled(t *testing.T) {
	w := httptest.NewRecorder()
	imageRouter(nil).ServeHTTP(w, uploadRequest(t, "image", pngHeader))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

type brokenFile struct{ io.Seeker }

func (brokenFile) Read([]byte) (int, error) {
	return 0, errors.New("unexpected disk error")
}

func TestSniffContentType(t *testing.T) {
	r := bytes.NewReader(pngHeader)
	contentType, err := sniffContentType(r)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, rest)

	_, err = sniffContentType(brokenFile{Seeker: bytes.NewReader(nil)})
	assert.EqualError(t, err, "unexpected disk error")
}
