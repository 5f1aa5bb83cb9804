// Package docs registers the OpenAPI description served under /swagger.
// Regenerate from the handler annotations with `swag init -g cmd/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {"get": {"tags": ["system"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/auth/sign-up": {"post": {"tags": ["auth"], "summary": "Register", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/auth/sign-in": {"post": {"tags": ["auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/v1/users": {"get": {"tags": ["users"], "summary": "List users", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/api/v1/users/pending": {"get": {"tags": ["users"], "summary": "List registrations pending approval", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/users/{id}/approve": {"post": {"tags": ["users"], "summary": "Approve or reject a registration", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}},
        "/api/v1/users/{id}/role": {"patch": {"tags": ["users"], "summary": "Change a user's role", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}},
        "/api/v1/users/{id}": {"delete": {"tags": ["users"], "summary": "Delete a user", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}},
        "/api/v1/agents": {
            "get": {"tags": ["agents"], "summary": "List agents", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["agents"], "summary": "Create agent", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/agents/{id}/sector": {"patch": {"tags": ["agents"], "summary": "Assign agent to a sector", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}},
        "/api/v1/stations/{station}/elements": {"get": {"tags": ["elements"], "summary": "List a station's elements of one installation type", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/stations/{station}/counts": {"get": {"tags": ["elements"], "summary": "Count a station's elements per installation type", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/elements": {"post": {"tags": ["elements"], "summary": "Create element", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/api/v1/elements/{id}": {
            "get": {"tags": ["elements"], "summary": "Get element", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["elements"], "summary": "Replace element", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}},
            "delete": {"tags": ["elements"], "summary": "Delete element", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/v1/elements/{id}/maintenance": {"get": {"tags": ["maintenance"], "summary": "Maintenance history of an element", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/elements/{id}/faults": {"get": {"tags": ["faults"], "summary": "Fault history of an element", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/maintenance": {"post": {"tags": ["maintenance"], "summary": "Record maintenance", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/api/v1/maintenance/daily": {"get": {"tags": ["maintenance"], "summary": "Maintenance done on a day", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/maintenance/monthly": {"get": {"tags": ["maintenance"], "summary": "Maintenance done in a month", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/faults": {"post": {"tags": ["faults"], "summary": "Record a fault", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/api/v1/lists": {"put": {"tags": ["lists"], "summary": "Save a monthly worklist", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/lists/{year}/{month}": {"get": {"tags": ["lists"], "summary": "Get a monthly worklist", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/lists/draft": {"post": {"tags": ["lists"], "summary": "Draft a monthly worklist from the registry", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/stats/semester": {"get": {"tags": ["stats"], "summary": "Semester compliance", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/stats/semester/export": {"get": {"tags": ["stats"], "summary": "Export semester compliance", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/cycle/check": {"post": {"tags": ["cycle"], "summary": "Run the semester reset check now", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SIGMA maintenance tracker API",
	Description:      "Elements, monthly worklists, maintenance records and semester compliance.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
