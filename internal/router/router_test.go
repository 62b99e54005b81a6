package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-api/backend/internal/api"
	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouterWithOptions(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	store := database.Static{Handle: testhelpers.SetupTestDatabase(t)}
	router, err := SetupRouter(
		opts,
		api.NewRecipeHandler(service.NewRecipeService(store), false),
		api.NewImageHandler(nil),
		api.NewHealthHandler(store, nil),
	)
	require.NoError(t, err)
	return router
}

func setupTestRouter(t *testing.T, prefix string) *gin.Engine {
	t.Helper()
	return setupTestRouterWithOptions(t, Options{Prefix: prefix, CORSOrigins: []string{"*"}})
}

func send(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecipeLifecycle(t *testing.T) {
	router := setupTestRouter(t, "")

	w := send(t, router, http.MethodPost, "/recipes", testhelpers.PancakesPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, ok := created["id"].(string)
	require.True(t, ok)
	assert.Equal(t, "Pancakes", created["title"])
	assert.Equal(t, []interface{}{"flour", "egg"}, created["ingredients"])

	w = send(t, router, http.MethodGet, "/recipes/title/Pancakes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(t, router, http.MethodGet, "/recipes/difficulty/easy", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(t, router, http.MethodPut, "/recipes/"+id+"/difficulty", map[string]string{"difficulty": "Difficult"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Difficult", updated["difficulty"])
	assert.Equal(t, "Pancakes", updated["title"])

	w = send(t, router, http.MethodPut, "/recipes/title/Pancakes/time", map[string]float64{"cookTime": 12})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"cookTime":12`)
	assert.Contains(t, w.Body.String(), `"prepTime":5`)

	w = send(t, router, http.MethodDelete, "/recipes/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Recipe deleted successfully"}`, w.Body.String())

	w = send(t, router, http.MethodGet, "/recipes/title/Pancakes", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Recipe not found"}`, w.Body.String())

	w = send(t, router, http.MethodDelete, "/recipes/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRecipesStartsEmpty(t *testing.T) {
	router := setupTestRouter(t, "")

	w := send(t, router, http.MethodGet, "/recipes", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = send(t, router, http.MethodGet, "/recipes/author/Nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No recipes found"}`, w.Body.String())
}

func TestCreateRecipeRejectsInvalidInput(t *testing.T) {
	router := setupTestRouter(t, "")

	payload := testhelpers.PancakesPayload()
	payload["difficulty"] = "Impossible"
	delete(payload, "title")

	w := send(t, router, http.MethodPost, "/recipes", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please add a title")
	assert.Contains(t, w.Body.String(), "Difficulty must be one of Easy, Intermediate, Difficult")

	w = send(t, router, http.MethodGet, "/recipes", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAPIPrefix(t *testing.T) {
	router := setupTestRouter(t, "/api")

	w := send(t, router, http.MethodPost, "/api/recipes", testhelpers.PancakesPayload())
	assert.Equal(t, http.StatusCreated, w.Code)

	w = send(t, router, http.MethodGet, "/api/recipes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(t, router, http.MethodGet, "/recipes", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Route not found"}`, w.Body.String())

	w = send(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadsDisabled(t *testing.T) {
	router := setupTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/recipes/images", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTitleWithSlash(t *testing.T) {
	router := setupTestRouter(t, "")

	payload := testhelpers.PancakesPayload()
	payload["title"] = "Mac/Cheese"
	w := send(t, router, http.MethodPost, "/recipes", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = send(t, router, http.MethodGet, "/recipes/title/Mac%2FCheese", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"title":"Mac/Cheese"`)

	w = send(t, router, http.MethodPut, "/recipes/title/Mac%2FCheese/time", map[string]float64{"prepTime": 20})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"prepTime":20`)

	w = send(t, router, http.MethodGet, "/recipes/title/Mac%20Cheese", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Recipe not found"}`, w.Body.String())
}

func TestClientIPIgnoresForwardedForByDefault(t *testing.T) {
	whoami := func(router *gin.Engine) string {
		router.GET("/whoami", func(c *gin.Context) {
			c.String(http.StatusOK, c.ClientIP())
		})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		req.Header.Set("X-Forwarded-For", "198.51.100.9")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Body.String()
	}

	assert.Equal(t, "203.0.113.7", whoami(setupTestRouter(t, "")))
	assert.Equal(t, "198.51.100.9", whoami(setupTestRouterWithOptions(t, Options{
		CORSOrigins:    []string{"*"},
		TrustedProxies: []string{"203.0.113.0/24"},
	})))
}

func TestSetupRouterRejectsInvalidProxy(t *testing.T) {
	store := database.Static{Handle: testhelpers.SetupTestDatabase(t)}
	router, err := SetupRouter(
		Options{TrustedProxies: []string{"not-an-ip"}},
		api.NewRecipeHandler(service.NewRecipeService(store), false),
		api.NewImageHandler(nil),
		api.NewHealthHandler(store, nil),
	)
	assert.Error(t, err)
	assert.Nil(t, router)
}
