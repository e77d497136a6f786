// Package docs registers the swagger document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [
                    {"type": "string", "description": "Client-chosen key; repeats are rejected with 409", "name": "Idempotency-Key", "in": "header"},
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/properties": {
            "get": {
                "description": "Returns up to limit properties (default 10). Filter parameters are accepted but not applied.",
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "List properties",
                "parameters": [
                    {"type": "integer", "description": "Maximum rows (default 10, max 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "City", "name": "city", "in": "query"},
                    {"type": "integer", "description": "Owner id", "name": "owner_id", "in": "query"},
                    {"type": "integer", "description": "Minimum price per night", "name": "minimum_price_per_night", "in": "query"},
                    {"type": "integer", "description": "Maximum price per night", "name": "maximum_price_per_night", "in": "query"},
                    {"type": "number", "description": "Minimum rating", "name": "minimum_rating", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.propertiesResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Add a property",
                "parameters": [
                    {"type": "string", "description": "Client-chosen key; repeats are rejected with 409", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Property details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createPropertyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Property"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/reservations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "List my reservations",
                "parameters": [
                    {"type": "integer", "description": "Maximum rows (default 10, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.reservationsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "domain.Property": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "owner_id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "thumbnail_photo_url": {"type": "string"},
                "cover_photo_url": {"type": "string"},
                "cost_per_night": {"type": "integer"},
                "parking_spaces": {"type": "integer"},
                "number_of_bathrooms": {"type": "integer"},
                "number_of_bedrooms": {"type": "integer"},
                "country": {"type": "string"},
                "street": {"type": "string"},
                "city": {"type": "string"},
                "province": {"type": "string"},
                "post_code": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "domain.Reservation": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "cost_per_night": {"type": "integer"},
                "start_date": {"type": "string"},
                "average_rating": {"type": "number"},
                "number_of_bedrooms": {"type": "integer"},
                "number_of_bathrooms": {"type": "integer"},
                "parking_spaces": {"type": "integer"},
                "thumbnail_photo_url": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "handler.createPropertyRequest": {
            "type": "object",
            "required": ["city", "country", "cover_photo_url", "post_code", "province", "street", "thumbnail_photo_url", "title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "thumbnail_photo_url": {"type": "string"},
                "cover_photo_url": {"type": "string"},
                "cost_per_night": {"type": "integer", "minimum": 0},
                "parking_spaces": {"type": "integer", "minimum": 0},
                "number_of_bathrooms": {"type": "integer", "minimum": 0},
                "number_of_bedrooms": {"type": "integer", "minimum": 0},
                "country": {"type": "string"},
                "street": {"type": "string"},
                "city": {"type": "string"},
                "province": {"type": "string"},
                "post_code": {"type": "string"}
            }
        },
        "handler.propertiesResponse": {
            "type": "object",
            "properties": {
                "properties": {"type": "array", "items": {"$ref": "#/definitions/domain.Property"}}
            }
        },
        "handler.reservationsResponse": {
            "type": "object",
            "properties": {
                "reservations": {"type": "array", "items": {"$ref": "#/definitions/domain.Reservation"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LightBnB API",
	Description:      "Users, property listings and reservations for LightBnB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
