// Package docs registers the Swagger document served at /swagger. Keep it in
// step with the godoc annotations on the controllers.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Health"],
                "summary": "Liveness",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Pings the database",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/jwt": {
            "post": {
                "description": "Signs a 30 day token for the signed-in user and stores it in the HTTP-only \"token\" cookie",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Issue access token",
                "parameters": [
                    {"description": "Signed-in user", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "get": {
                "description": "Expires the token cookie on the client. The token is not revoked server-side.",
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SuccessResponse"}}
                }
            }
        },
        "/order": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "List orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}}
                }
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "description": "Product and user references are stored as given, without existence checks.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Checkout",
                "parameters": [
                    {"description": "Order", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.InsertResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/order/{email}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "List orders of a user",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/shop": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Shop"],
                "summary": "List shop items",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/shop/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Shop"],
                "summary": "Get shop item",
                "parameters": [
                    {"type": "string", "description": "Shop item ObjectID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stores the sign-in record. Email uniqueness is not enforced.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create user",
                "parameters": [
                    {"description": "User", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.InsertResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"CookieAuth": []}],
                "description": "Sets lastLoginAt on the user with the given email. No match is not an error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Record last login",
                "parameters": [
                    {"description": "Login", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateLastLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UpdateResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/users/{email}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Get user by email",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Update profile",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "email", "in": "path", "required": true},
                    {"description": "Profile fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "productId": {"type": "string"},
                "quantity": {"description": "number or numeric string", "type": "integer"},
                "userEmail": {"type": "string"}
            }
        },
        "models.CreateUserRequest": {
            "description": "Fields beyond the listed ones are stored as sent.",
            "type": "object",
            "additionalProperties": true,
            "properties": {
                "address": {"type": "string"},
                "email": {"type": "string"},
                "image": {"type": "string"},
                "lastLoginAt": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "models.InsertResult": {
            "type": "object",
            "properties": {
                "acknowledged": {"type": "boolean"},
                "insertedId": {}
            }
        },
        "models.Order": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "createdAt": {"type": "string"},
                "productId": {"type": "string"},
                "quantity": {"type": "integer"},
                "userEmail": {"type": "string"}
            }
        },
        "models.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "models.TokenRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "models.UpdateLastLoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "lastLoginAt": {"description": "ISO 8601 or RFC 1123 string, or epoch milliseconds; server clock when absent", "type": "string"}
            }
        },
        "models.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "models.UpdateResult": {
            "type": "object",
            "properties": {
                "acknowledged": {"type": "boolean"},
                "matchedCount": {"type": "integer"},
                "modifiedCount": {"type": "integer"},
                "upsertedCount": {"type": "integer"},
                "upsertedId": {}
            }
        },
        "models.User": {
            "description": "Stored fields other than the listed ones are returned as stored.",
            "type": "object",
            "additionalProperties": true,
            "properties": {
                "_id": {"type": "string"},
                "address": {"type": "string"},
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "image": {"type": "string"},
                "lastLoginAt": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "type": "apiKey",
            "name": "token",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Handicraft Businesses API",
	Description:      "Users, shop listings and orders for the handicraft marketplace.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
