// Package docs holds the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.productResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Create a product",
                "description": "Omitted fields take the configured product defaults.",
                "parameters": [
                    {"description": "New product", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.productResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get a product",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.productResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Edit a product",
                "description": "Only keys present in the body change. null clears an optional field.",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.editProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.productResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "New user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            }
        },
        "/users/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Aggregate user statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.usersStatsResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Edit a user",
                "description": "Only keys present in the body change. null clears email or avatar.",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.editUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            }
        },
        "/users/{id}/buy": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["text/plain"],
                "produces": ["application/json"],
                "tags": ["balance"],
                "summary": "Buy a product",
                "description": "The body is a bare product id. The product price is debited.",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Retry key", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Product ID", "name": "product", "in": "body", "required": true, "schema": {"type": "integer"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            }
        },
        "/users/{id}/transfer": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["balance"],
                "summary": "Transfer funds to another user",
                "parameters": [
                    {"type": "integer", "description": "Sender user ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Retry key", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Amount and receiver", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.fundsTransferRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.transferResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            }
        },
        "/users/{id}/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["balance"],
                "summary": "Balance journal of a user, newest first",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum entries (default 50, max 200)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.BalanceEvent"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            }
        },
        "/users/{id}/{operation}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["text/plain"],
                "produces": ["application/json"],
                "tags": ["balance"],
                "summary": "Deposit or spend",
                "description": "The body is a bare integer amount in minor units.",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"enum": ["deposit", "spend"], "type": "string", "description": "deposit or spend", "name": "operation", "in": "path", "required": true},
                    {"type": "string", "description": "Retry key", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Amount", "name": "amount", "in": "body", "required": true, "schema": {"type": "integer"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.StatusResponse"}}
                }
            }
        },
        "/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["info"],
                "summary": "Server metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ServerInfo"}}
                }
            }
        }
    },
    "definitions": {
        "handler.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "error"},
                "message": {"type": "string", "example": "user 7: not found"}
            }
        },
        "handler.createProductRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "caffeine": {"type": "integer"},
                "alcohol": {"type": "integer"},
                "energy": {"type": "integer"},
                "sugar": {"type": "integer"},
                "price": {"type": "integer"},
                "active": {"type": "boolean"},
                "image": {"type": "integer"}
            }
        },
        "handler.editProductRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "caffeine": {"type": "integer"},
                "alcohol": {"type": "integer"},
                "energy": {"type": "integer"},
                "sugar": {"type": "integer"},
                "price": {"type": "integer"},
                "active": {"type": "boolean"},
                "image": {"type": "integer"}
            }
        },
        "handler.productResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "caffeine": {"type": "integer"},
                "alcohol": {"type": "integer"},
                "energy": {"type": "integer"},
                "sugar": {"type": "integer"},
                "price": {"type": "integer"},
                "active": {"type": "boolean"},
                "image": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.createUserRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "balance": {"type": "integer"},
                "active": {"type": "boolean"},
                "audit": {"type": "boolean"},
                "redirect": {"type": "boolean"},
                "avatar": {"type": "integer"}
            }
        },
        "handler.editUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "balance": {"type": "integer"},
                "active": {"type": "boolean"},
                "audit": {"type": "boolean"},
                "redirect": {"type": "boolean"},
                "avatar": {"type": "integer"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "balance": {"type": "integer"},
                "active": {"type": "boolean"},
                "audit": {"type": "boolean"},
                "redirect": {"type": "boolean"},
                "avatar": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.usersStatsResponse": {
            "type": "object",
            "properties": {
                "user_count": {"type": "integer"},
                "active_count": {"type": "integer"},
                "balance_sum": {"type": "integer"}
            }
        },
        "handler.fundsTransferRequest": {
            "type": "object",
            "required": ["amount", "receiver"],
            "properties": {
                "amount": {"type": "integer"},
                "receiver": {"type": "integer"}
            }
        },
        "handler.transferResponse": {
            "type": "object",
            "properties": {
                "sender": {"$ref": "#/definitions/handler.userResponse"},
                "receiver": {"$ref": "#/definitions/handler.userResponse"}
            }
        },
        "domain.BalanceEvent": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["deposit", "spend", "purchase", "transfer"]},
                "user_id": {"type": "integer"},
                "counterparty_id": {"type": "integer"},
                "product_id": {"type": "integer"},
                "amount": {"type": "integer"},
                "balance_after": {"type": "integer"},
                "request_id": {"type": "string"},
                "recorded_at": {"type": "string"}
            }
        },
        "domain.ServerInfo": {
            "type": "object",
            "properties": {
                "version": {"type": "string"},
                "global_credit_limit": {"description": "integer limit, or false when unset"},
                "currency": {"type": "string"},
                "currency_before": {"type": "boolean"},
                "decimal_seperator": {"type": "string"},
                "energy": {"type": "string"},
                "defaults": {"type": "object"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "3.0.0",
	Host:             "",
	BasePath:         "/api/v3",
	Schemes:          []string{},
	Title:            "POS Server API",
	Description:      "Products, user accounts and balances for a point-of-sale terminal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
