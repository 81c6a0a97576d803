package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "StockRoom inventory API Documentation",
        "title": "StockRoom API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http"],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Operator Login",
                "description": "Login with the configured operator credentials",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "description": "Operator credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "username": {"type": "string"},
                                "password": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Access token issued"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/items": {
            "get": {
                "tags": ["Inventory"],
                "summary": "List Items",
                "description": "List every stocked item with its quantity, in insertion order",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Item list"}
                }
            },
            "post": {
                "tags": ["Inventory"],
                "summary": "Add Stock",
                "description": "Increase the stock of an item, creating it if needed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "in": "body",
                        "name": "item",
                        "description": "Item name and quantity to add",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {"type": "string"},
                                "quantity": {"type": "integer"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Resulting quantity"},
                    "400": {"description": "Invalid request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/items/{name}": {
            "get": {
                "tags": ["Inventory"],
                "summary": "Get Quantity",
                "description": "Current quantity of an item; 0 when absent",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "name", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Quantity"}
                }
            }
        },
        "/items/{name}/remove": {
            "post": {
                "tags": ["Inventory"],
                "summary": "Remove Stock",
                "description": "Decrease the stock of an item; removing at least the stored quantity deletes the entry",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "name", "type": "string", "required": true},
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "quantity": {"type": "integer"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Remaining quantity"},
                    "404": {"description": "Item not found"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/items/low": {
            "get": {
                "tags": ["Inventory"],
                "summary": "Low Stock Report",
                "description": "Items with quantity strictly below the threshold (default 5)",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "threshold", "type": "integer", "required": false}
                ],
                "responses": {
                    "200": {"description": "Low stock items"}
                }
            }
        },
        "/inventory/save": {
            "post": {
                "tags": ["Inventory"],
                "summary": "Save Inventory",
                "description": "Persist the current inventory to the configured backend",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Saved"},
                    "500": {"description": "Persistence failed"}
                }
            }
        },
        "/inventory/load": {
            "post": {
                "tags": ["Inventory"],
                "summary": "Load Inventory",
                "description": "Replace the in-memory inventory with the persisted snapshot",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Loaded"},
                    "500": {"description": "Load failed"}
                }
            }
        },
        "/audit": {
            "get": {
                "tags": ["Inventory"],
                "summary": "Audit Trail",
                "description": "Recent inventory mutations, oldest first",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "limit", "type": "integer", "required": false}
                ],
                "responses": {
                    "200": {"description": "Audit entries"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the access token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "StockRoom API",
	Description:      "StockRoom inventory API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
