// Package docs holds the Swagger description served at /swagger.
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
        "/api/v1/monitor/messages": {
            "post": {
                "description": "Classifies the message, extracts its fields and runs the matching review.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Monitor"],
                "summary": "Submit a monitoring message",
                "parameters": [
                    {
                        "description": "Message",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.messageReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.messageResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/monitor/stats": {
            "get": {
                "description": "Returns the number of requests handled since start and the most recent request log entries, newest first.",
                "produces": ["application/json"],
                "tags": ["Monitor"],
                "summary": "Request statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.statsResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/monitor/conversations/{sender}": {
            "delete": {
                "description": "Forgets the guidance history kept for the sender.",
                "produces": ["application/json"],
                "tags": ["Monitor"],
                "summary": "Clear a sender's conversation",
                "parameters": [
                    {"type": "string", "description": "Sender ID", "name": "sender", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/test/message": {
            "post": {
                "description": "Classify a message and extract its handler arguments without calling the LLM or Telegram",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["test"],
                "summary": "Test message routing",
                "parameters": [
                    {
                        "description": "Test message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/test.TestMessageRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/test.TestMessageResponse"}}
                }
            }
        },
        "/test/reset": {
            "post": {
                "description": "Clear conversation history for a test user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["test"],
                "summary": "Reset test user session",
                "parameters": [
                    {
                        "description": "Reset session",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/test.ResetSessionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/test.ResetSessionResponse"}}
                }
            }
        },
        "/test/health": {
            "get": {
                "description": "Check if test endpoints are available",
                "produces": ["application/json"],
                "tags": ["test"],
                "summary": "Test health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/test.HealthCheckResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.messageReq": {
            "type": "object",
            "required": ["sender", "text"],
            "properties": {
                "sender": {"type": "string", "maxLength": 255},
                "text": {"type": "string"}
            }
        },
        "http.messageResp": {
            "type": "object",
            "properties": {
                "request_type": {"type": "string"},
                "rule": {"type": "string"},
                "success": {"type": "boolean"},
                "reply": {"type": "string"}
            }
        },
        "http.recordResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "sender": {"type": "string"},
                "request_type": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "http.statsResp": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "recent": {"type": "array", "items": {"$ref": "#/definitions/http.recordResp"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        },
        "test.TestMessageRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "test.TestMessageResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "request_type": {"type": "string"},
                "rule": {"type": "string"},
                "arguments": {"type": "object"},
                "text": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "test.ResetSessionRequest": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"}
            }
        },
        "test.ResetSessionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "test.HealthCheckResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Clinical Trial Monitor API",
	Description:      "Routes clinical trial monitoring requests to LLM backed reviews over Telegram and HTTP.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
