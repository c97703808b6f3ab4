// Package docs registers the OpenAPI description served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/v1/auth/signin": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in with email and password",
                "responses": {
                    "200": {"description": "token and session user"},
                    "401": {"description": "invalid credentials"}
                }
            }
        },
        "/v1/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account and sign in",
                "responses": {
                    "201": {"description": "token and session user"},
                    "409": {"description": "email already registered"}
                }
            }
        },
        "/v1/auth/signout": {
            "post": {
                "tags": ["auth"],
                "summary": "Revoke the bearer session",
                "responses": {"204": {"description": "session revoked or absent"}}
            }
        },
        "/v1/auth/session": {
            "get": {
                "tags": ["auth"],
                "summary": "Read the current session",
                "responses": {"200": {"description": "session user, null when unauthenticated"}}
            }
        },
        "/v1/directory/factories": {
            "get": {
                "tags": ["directory"],
                "summary": "List the public factory directory",
                "responses": {"200": {"description": "factory profiles"}}
            }
        },
        "/v1/dashboard/products": {
            "get": {
                "tags": ["products"],
                "summary": "List products",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "paginated products"},
                    "401": {"description": "authentication required"}
                }
            },
            "post": {
                "tags": ["products"],
                "summary": "Create a product",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "created product"},
                    "403": {"description": "factory role required"}
                }
            }
        },
        "/v1/dashboard/leads": {
            "get": {
                "tags": ["leads"],
                "summary": "List leads visible to the caller",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "paginated leads"}}
            },
            "post": {
                "tags": ["leads"],
                "summary": "Submit a lead",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "created lead"},
                    "403": {"description": "marketer role required"}
                }
            }
        },
        "/v1/dashboard/leads/{id}": {
            "patch": {
                "tags": ["leads"],
                "summary": "Advance a lead's status",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "updated lead"},
                    "422": {"description": "invalid status transition"}
                }
            }
        },
        "/v1/navigation": {
            "get": {
                "tags": ["navigation"],
                "summary": "Get the sidebar menu for the session role",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "role and menu entries"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Export Base Marketplace API",
	Description:      "Role-based B2B export marketplace: sessions, catalog, leads and marketer tooling.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
