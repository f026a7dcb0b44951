//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

// SwaggerInfo holds the exported OpenAPI metadata for the notifyd API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "notifyd API",
	Description:      "HTTP front for the in-process notification bus.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// MountSwagger serves the OpenAPI document and UI under /swagger/.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

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
    "paths": {
        "/publish": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Publish a payload to every listener of a topic",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/types.PublishRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/types.PublishResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "413": {"description": "Payload Too Large", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Notifier closed", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/topics": {
            "get": {
                "produces": ["application/json"],
                "summary": "List topics with live listener counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.TopicsResponse"}}
                }
            }
        },
        "/healthz": {"get": {"summary": "Liveness", "responses": {"200": {"description": "ok"}}}},
        "/readyz": {"get": {"summary": "Readiness", "responses": {"200": {"description": "ready"}, "503": {"description": "closed"}}}}
    },
    "definitions": {
        "types.PublishRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string", "example": "MOSTRAR_NOTIFICACION_EXITO"},
                "payload": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "types.PublishResponse": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "listeners": {"type": "integer"}
            }
        },
        "types.TopicStatus": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "listeners": {"type": "integer"}
            }
        },
        "types.TopicsResponse": {
            "type": "object",
            "properties": {
                "topics": {"type": "array", "items": {"$ref": "#/definitions/types.TopicStatus"}}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid JSON body"},
                "code": {"type": "integer", "example": 400}
            }
        }
    }
}`
