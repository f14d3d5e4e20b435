package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewLookupController()
	r := gin.New()
	r.GET("/api/fonts", ctrl.GetFonts)
	r.GET("/api/sizes", ctrl.GetSizes)
	r.GET("/api/colors", ctrl.GetColors)
	r.GET("/api/shirt-styles", ctrl.GetShirtStyles)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) map[string]interface{} {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	return body
}

func TestGetFonts(t *testing.T) {
	body := getJSON(t, lookupRouter(), "/api/fonts")
	fonts := body["data"].([]interface{})
	assert.Len(t, fonts, 5)
}

func TestGetSizes(t *testing.T) {
	body := getJSON(t, lookupRouter(), "/api/sizes")
	sizes := body["data"].([]interface{})
	require.Len(t, sizes, 8)

	last := sizes[len(sizes)-1].(map[string]interface{})
	assert.Equal(t, "5XL", last["id"])
	assert.Equal(t, float64(8), last["extraCost"])
}

func TestGetShirtStyles(t *testing.T) {
	body := getJSON(t, lookupRouter(), "/api/shirt-styles")
	styles := body["data"].([]interface{})
	require.Len(t, styles, 3)

	first := styles[0].(map[string]interface{})
	assert.Equal(t, "regular", first["id"])
	assert.Equal(t, float64(20), first["basePrice"])
}

func TestGetColors(t *testing.T) {
	body := getJSON(t, lookupRouter(), "/api/colors")
	colors := body["data"].([]interface{})
	assert.NotEmpty(t, colors)
	assert.Contains(t, colors, "Sage")
}
