// Package docs registers the generated OpenAPI description with the
// swaggo runtime so the Swagger UI route can serve it.
//
// Regenerate with:
//
//	swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/recipes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List published recipes (paginated)",
                "operationId": "listRecipes",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page number (clamped)",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recipes"],
                "summary": "Create a recipe",
                "operationId": "createRecipe",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed"},
                    "401": {"description": "Unauthenticated"},
                    "403": {"description": "Staff only"}
                }
            }
        },
        "/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Search published recipes",
                "operationId": "searchRecipes",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "min_rating", "in": "query"},
                    {"type": "integer", "name": "max_prep_time", "in": "query"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal error"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Recipe Blog API",
	Description:      "Recipe publishing backend: drafts, autosave, search, comments, ratings, and likes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
