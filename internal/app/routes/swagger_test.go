package routes

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var pathParam = regexp.MustCompile(`:(\w+)`)

// Every /api route must be described by the registered OpenAPI document.
func TestSwaggerDoc_DescribesEveryRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router, Controllers{})

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/api", doc.BasePath)

	for _, route := range router.Routes() {
		if !strings.HasPrefix(route.Path, doc.BasePath+"/") {
			continue
		}
		path := pathParam.ReplaceAllString(strings.TrimPrefix(route.Path, doc.BasePath), "{$1}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "undocumented path %s", path) {
			assert.Contains(t, ops, strings.ToLower(route.Method), "undocumented %s %s", route.Method, path)
		}
	}
}
