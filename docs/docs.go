// Package docs registers the Flow7 OpenAPI document with swag.
package docs

import (
	"strings"

	"github.com/swaggo/swag"
)

// DefaultAPIPrefix is the health route prefix documented until Configure is called.
const DefaultAPIPrefix = "/api/v1"

// apiPrefixToken marks the prefixed paths in docTemplate.
const apiPrefixToken = "__API_PREFIX__"

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
        "/": {
            "get": {
                "produces": ["text/html"],
                "summary": "Landing page",
                "responses": {
                    "200": {
                        "description": "HTML document",
                        "schema": {"type": "string"}
                    }
                }
            }
        },
        "/api": {
            "get": {
                "produces": ["application/json"],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.MessageResponse"}
                    }
                }
            }
        },
        "__API_PREFIX__/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.HealthResponse"}
                    }
                }
            }
        },
        "__API_PREFIX__/health/db": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Database health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.DatabaseHealthResponse"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "handler.DatabaseHealthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Flow7 API",
	Description:      "AI Agent Platform API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  templateFor(DefaultAPIPrefix),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// Configure sets the document title, host and the prefix of the health paths.
// It mutates package state and must run once, before the docs are served.
func Configure(title, host, apiPrefix string) {
	SwaggerInfo.Title = title
	SwaggerInfo.Host = host
	SwaggerInfo.SwaggerTemplate = templateFor(apiPrefix)
}

func templateFor(apiPrefix string) string {
	return strings.ReplaceAll(docTemplate, apiPrefixToken, apiPrefix)
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
