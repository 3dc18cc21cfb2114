// Package docs serves the OpenAPI description of the rides API.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIYAML []byte

// OpenAPIYAML returns the embedded document.
func OpenAPIYAML() []byte {
	return openAPIYAML
}

// OpenAPIJSON returns the embedded document converted to JSON.
func OpenAPIJSON() ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(openAPIYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	return json.Marshal(doc)
}

// Register mounts the document under rg at openapi.yaml and openapi.json.
func Register(rg *gin.RouterGroup) error {
	asJSON, err := OpenAPIJSON()
	if err != nil {
		return err
	}

	rg.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", openAPIYAML)
	})
	rg.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", asJSON)
	})
	return nil
}
