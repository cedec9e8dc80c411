// Package docs registers the OpenAPI description of the counter JSON API.
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
        "/currencies": {
            "get": {
                "description": "Retrieves the currencies the counter accepts, in display order",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List supported currencies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CurrencyResponse"}}},
                    "500": {"description": "Failed to list currencies", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/currencies/{code}": {
            "get": {
                "description": "Retrieves details for a supported currency by its 3-letter code",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Get a currency by code",
                "parameters": [
                    {"maxLength": 3, "minLength": 3, "type": "string", "description": "Currency Code (3 letters)", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrencyResponse"}},
                    "400": {"description": "Invalid currency code", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Currency not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/session": {
            "get": {
                "description": "Returns the step, customer and exchange rows of the caller's session",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Get the current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}}
                }
            }
        },
        "/session/customer": {
            "put": {
                "description": "Validates and stores the customer record and opens the exchange step",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Submit customer information",
                "parameters": [
                    {"description": "Customer details", "name": "customer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CustomerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "409": {"description": "Not allowed while the receipt is shown", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/session/rows": {
            "post": {
                "description": "Appends a blank exchange row",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Add an exchange row",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "409": {"description": "Not in the exchange step", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/session/rows/{index}": {
            "patch": {
                "description": "Sets currencyCode, amountReceived or rateOffered; amountIssued is recomputed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Edit one field of an exchange row",
                "parameters": [
                    {"type": "integer", "description": "Zero-based row index", "name": "index", "in": "path", "required": true},
                    {"description": "Field and value", "name": "edit", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EditLineItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Not in the exchange step", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Removes the row at index; the last remaining row is never removed",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Remove an exchange row",
                "parameters": [
                    {"type": "integer", "description": "Zero-based row index", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "409": {"description": "Not in the exchange step", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/session/exchange": {
            "post": {
                "description": "Validates every row, issues the receipt and moves to the receipt step",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Finalize the exchange",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReceiptResponse"}},
                    "409": {"description": "Not in the exchange step", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Row validation failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/session/receipt": {
            "get": {
                "description": "Returns the issued receipt while the session is showing it",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Get the receipt",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReceiptResponse"}},
                    "409": {"description": "No receipt issued yet", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/session/reset": {
            "post": {
                "description": "Clears the customer, rows and receipt and returns to the customer step",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Start a new transaction",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CurrencyResponse": {
            "type": "object",
            "properties": {
                "currencyCode": {"type": "string"},
                "name": {"type": "string"},
                "symbol": {"type": "string"}
            }
        },
        "dto.CustomerRequest": {
            "type": "object",
            "required": ["idNumber", "name", "source"],
            "properties": {
                "idNumber": {"type": "string"},
                "name": {"type": "string"},
                "otherSource": {"type": "string"},
                "source": {"type": "string", "enum": ["vacation", "relatives", "tourists", "unutilized", "other"]}
            }
        },
        "dto.EditLineItemRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string", "enum": ["currencyCode", "amountReceived", "rateOffered"]},
                "value": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"},
                "kind": {"type": "string"},
                "row": {"type": "integer"}
            }
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "sessionID": {"type": "string"},
                "step": {"type": "string"},
                "customer": {"type": "object"},
                "lineItems": {"type": "array", "items": {"type": "object"}},
                "receiptReady": {"type": "boolean"},
                "canRemoveRow": {"type": "boolean"}
            }
        },
        "dto.ReceiptResponse": {
            "type": "object",
            "properties": {
                "serialNumber": {"type": "string"},
                "date": {"type": "string"},
                "issuedAt": {"type": "string"},
                "customer": {"type": "object"},
                "lines": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "string"},
                "totalCurrency": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Foreign Currency Counter API",
	Description:      "Customer capture, exchange line items and receipts for a money changer counter.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
