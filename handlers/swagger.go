package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger serves a Swagger UI page and the OpenAPI document for the site API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>isebirbax - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "isebirbax", "version": "v0.1.0" },
  "components": {
    "securitySchemes": { "bearer": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" } },
    "schemas": {
      "Document": {"type":"object","properties":{"id":{"type":"string"},"title":{"type":"string"},"description":{"type":"string"},"imageUrl":{"type":"string"},"category":{"type":"string","enum":["Diploma","Certificate"]},"status":{"type":"string","enum":["visible","hidden","deleted"]},"createdAt":{"type":"integer","description":"unix milliseconds"}}},
      "Service": {"type":"object","properties":{"id":{"type":"string"},"title":{"type":"string"},"description":{"type":"string"},"highlights":{"type":"array","items":{"type":"string"}},"createdAt":{"type":"integer"}}},
      "Message": {"type":"object","properties":{"id":{"type":"string"},"name":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"subject":{"type":"string"},"body":{"type":"string"},"status":{"type":"string","enum":["unread","read"]},"createdAt":{"type":"integer"}}}
    }
  },
  "paths": {
    "/api/gallery": { "get": { "summary": "Visible documents, newest first", "responses": { "200": { "description": "documents" } } } },
    "/api/services": { "get": { "summary": "Offered services", "responses": { "200": { "description": "services" } } } },
    "/api/messages": { "post": { "summary": "Submit a contact message", "responses": { "201": { "description": "created" }, "400": { "description": "bad request" }, "429": { "description": "rate limited" } } } },
    "/api/admin/login": { "post": { "summary": "Exchange admin credentials for a token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"username":{"type":"string"},"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "token returned" }, "401": { "description": "invalid credentials" } } } },
    "/api/admin/documents": {
      "get": { "summary": "All documents", "security": [{"bearer": []}], "responses": { "200": { "description": "documents" } } },
      "post": { "summary": "Add a document", "security": [{"bearer": []}], "responses": { "201": { "description": "created" }, "400": { "description": "title and imageUrl are required" } } }
    },
    "/api/admin/documents/{id}": {
      "patch": { "summary": "Edit document fields", "security": [{"bearer": []}], "responses": { "200": { "description": "updated" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Permanently delete a document", "security": [{"bearer": []}], "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/admin/documents/{id}/status": { "put": { "summary": "Set visible, hidden or deleted", "security": [{"bearer": []}], "responses": { "200": { "description": "updated" }, "400": { "description": "invalid status" }, "404": { "description": "not found" } } } },
    "/api/admin/services": {
      "get": { "summary": "All services", "security": [{"bearer": []}], "responses": { "200": { "description": "services" } } },
      "post": { "summary": "Add a service", "security": [{"bearer": []}], "responses": { "201": { "description": "created" } } }
    },
    "/api/admin/services/{id}": {
      "patch": { "summary": "Edit service fields", "security": [{"bearer": []}], "responses": { "200": { "description": "updated" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a service", "security": [{"bearer": []}], "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/admin/messages": { "get": { "summary": "Inbox with unread count", "security": [{"bearer": []}], "responses": { "200": { "description": "messages" } } } },
    "/api/admin/messages/{id}/status": { "put": { "summary": "Mark read or unread", "security": [{"bearer": []}], "responses": { "200": { "description": "updated" }, "404": { "description": "not found" } } } },
    "/api/admin/messages/{id}": { "delete": { "summary": "Delete a message", "security": [{"bearer": []}], "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } } },
    "/api/admin/credentials": { "put": { "summary": "Replace admin credentials", "security": [{"bearer": []}], "responses": { "204": { "description": "updated" }, "400": { "description": "username and password are required" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
