// Package docs registra el documento OpenAPI servido en /swagger/*.
// Se mantiene a mano con el formato de swag init; tiene que seguir las anotaciones de los handlers.
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
        "/api/chat": {
            "post": {
                "description": "Responde una pregunta usando el timeline como contexto. Siempre 200 con un texto mostrable: si el modelo falla se usa una respuesta local. Eventos malformados se descartan.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Preguntar al asistente",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "description": "Mensaje + eventos",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/chat.chatRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.chatResponse"}},
                    "400": {"description": "invalid json / message is required", "schema": {"type": "string"}}
                }
            }
        },
        "/api/chat/events/{eventID}": {
            "get": {
                "description": "Mensaje de asistente con el detalle de un evento del timeline (al seleccionarlo en la UI).",
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Describir evento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "ID del evento",
                        "name": "eventID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.describeResponse"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "event not found", "schema": {"type": "string"}}
                }
            }
        },
        "/me": {
            "get": {
                "description": "Devuelve los claims del usuario autenticado (chequeo de sesión del dashboard).",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sesión actual",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Bearer token de sesión",
                        "name": "Authorization",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.Claims"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/timeline/demo": {
            "get": {
                "produces": ["application/json"],
                "tags": ["timeline"],
                "summary": "Timeline de ejemplo",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/timeline.eventResponse"}}
                    }
                }
            }
        },
        "/timeline/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["timeline"],
                "summary": "Listar timeline",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Bearer token de sesión",
                        "name": "Authorization",
                        "in": "header"
                    },
                    {"type": "string", "description": "CSV de tipos (ej: medication,lab)", "name": "types", "in": "query"},
                    {"type": "string", "description": "Fecha mínima (YYYY-MM-DD)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Fecha máxima (YYYY-MM-DD)", "name": "to", "in": "query"},
                    {"type": "string", "description": "Texto en título/descripción", "name": "q", "in": "query"},
                    {"type": "integer", "description": "Máximo de eventos (1-200). Por defecto 50", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/timeline.eventResponse"}}
                    },
                    "400": {"description": "Parámetros de filtro inválidos", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Registra un evento médico en el timeline del usuario autenticado. ` + "`" + `date` + "`" + `/` + "`" + `endDate` + "`" + ` en YYYY-MM-DD o RFC3339; ` + "`" + `endDate` + "`" + ` no puede ser anterior a ` + "`" + `date` + "`" + `.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["timeline"],
                "summary": "Crear evento en el timeline",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Bearer token de sesión",
                        "name": "Authorization",
                        "in": "header"
                    },
                    {
                        "description": "Evento",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/timeline.Input"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/timeline.eventResponse"}},
                    "400": {"description": "invalid json / datos inválidos", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "409": {"description": "event already exists", "schema": {"type": "string"}}
                }
            }
        },
        "/timeline/events/counts": {
            "get": {
                "description": "Total de eventos y conteo por tipo (botones de filtro).",
                "produces": ["application/json"],
                "tags": ["timeline"],
                "summary": "Conteos por tipo",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/timeline.Counts"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/timeline/events/{eventID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["timeline"],
                "summary": "Obtener evento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {"type": "string", "description": "ID del evento", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/timeline.eventResponse"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "event not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["timeline"],
                "summary": "Borrar evento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {"type": "string", "description": "ID del evento", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "event not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "auth.Claims": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "chat.Message": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "id": {"type": "string"},
                "role": {"$ref": "#/definitions/chat.Role"},
                "timestamp": {"type": "string"}
            }
        },
        "chat.Role": {
            "type": "string",
            "enum": ["user", "assistant"],
            "x-enum-varnames": ["RoleUser", "RoleAssistant"]
        },
        "chat.Source": {
            "type": "string",
            "enum": ["completion", "nontext", "fallback"],
            "x-enum-varnames": ["SourceCompletion", "SourceNonText", "SourceFallback"]
        },
        "chat.chatRequest": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/timeline.Input"}},
                "message": {"type": "string"}
            }
        },
        "chat.chatResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "reply": {"$ref": "#/definitions/chat.Message"},
                "source": {"$ref": "#/definitions/chat.Source"}
            }
        },
        "chat.describeResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "timeline.Counts": {
            "type": "object",
            "properties": {
                "all": {"type": "integer"},
                "byType": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "timeline.EventType": {
            "type": "string",
            "enum": ["medication", "appointment", "lab", "diagnosis", "voice"],
            "x-enum-varnames": [
                "EventTypeMedication",
                "EventTypeAppointment",
                "EventTypeLab",
                "EventTypeDiagnosis",
                "EventTypeVoice"
            ]
        },
        "timeline.Input": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "description": {"type": "string"},
                "endDate": {"type": "string"},
                "id": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "timeline.eventResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "endDate": {"type": "string"},
                "id": {"type": "string"},
                "title": {"type": "string"},
                "type": {"$ref": "#/definitions/timeline.EventType"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "HealthFlow+ API",
	Description:      "Timeline médico y asistente de chat de HealthFlow+.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
