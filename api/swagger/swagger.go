package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Report Card API",
        "description": "Single-owner academic record: terms, courses and graded activities",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Owner login"},
        {"name": "Record", "description": "The persisted record and its exports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Exchange the owner passphrase for an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid passphrase", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/record": {
            "get": {
                "tags": ["Record"],
                "summary": "Current record",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Record not initialised", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Record"],
                "summary": "Replace the record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RecordRequest"}}
                ],
                "responses": {
                    "200": {"description": "Saved", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/record/terms": {
            "post": {
                "tags": ["Record"],
                "summary": "Append a term",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TermRequest"}}
                ],
                "responses": {
                    "201": {"description": "Saved", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Record not initialised", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/record/export": {
            "get": {
                "tags": ["Record"],
                "summary": "Download the record",
                "produces": ["text/csv", "application/pdf", "application/yaml"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "yaml"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/record/snapshots": {
            "get": {
                "tags": ["Record"],
                "summary": "Saved history, newest first",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer", "default": 50}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/record/snapshots/{id}/restore": {
            "post": {
                "tags": ["Record"],
                "summary": "Make a snapshot the current record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Restored", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown snapshot", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["passphrase"],
            "properties": {
                "passphrase": {"type": "string"}
            }
        },
        "ActivityRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "due_date": {"type": "string", "format": "date-time"},
                "date_received": {"type": "string", "format": "date-time"},
                "points_received": {"type": "number"},
                "total_points": {"type": "number"},
                "percentage": {"type": "number"},
                "letter_grade": {"type": "string", "maxLength": 3},
                "grade": {"type": "string", "example": "A-"}
            }
        },
        "CourseRequest": {
            "type": "object",
            "required": ["course_code"],
            "properties": {
                "course_code": {"type": "string"},
                "name": {"type": "string"},
                "gpa": {"type": "number", "minimum": 0, "maximum": 4},
                "is_exempt_or_withdrawn": {"type": "boolean"},
                "letter_grade": {"type": "string", "maxLength": 3},
                "grade": {"type": "string", "example": "B+"},
                "activities": {"type": "array", "items": {"$ref": "#/definitions/ActivityRequest"}}
            }
        },
        "TermRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "start_date": {"type": "string", "format": "date-time"},
                "end_date": {"type": "string", "format": "date-time"},
                "gpa": {"type": "number", "minimum": 0, "maximum": 4},
                "is_deans_honour": {"type": "boolean"},
                "courses": {"type": "array", "items": {"$ref": "#/definitions/CourseRequest"}}
            }
        },
        "RecordRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "creation_date": {"type": "string", "format": "date-time"},
                "terms": {"type": "array", "items": {"$ref": "#/definitions/TermRequest"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
