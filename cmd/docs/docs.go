// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/pharma_backend/main.go -o cmd/docs
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
        "/company/v1/add-company": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "Onboard a company",
                "parameters": [
                    {"description": "Company details", "name": "company", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCompanyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "409": {"description": "Company name already exists", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/company/v1/get-company": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "List companies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/company/v1/get-company/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "Get a company by ID",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Company not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/company/v1/{id}/seed-defaults": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "Seed the default chart of accounts",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Company not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/group/v1/add-group": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Create an account group",
                "parameters": [
                    {"description": "Group details", "name": "group", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateGroupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "409": {"description": "Group name already exists", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/group/v1/get-group": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "List account groups",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "companyId", "in": "query"},
                    {"type": "string", "description": "Name contains", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/group/v1/tree": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Get the group hierarchy",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/ledger/v1/add-ledger": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ledgers"],
                "summary": "Create a ledger",
                "parameters": [
                    {"description": "Ledger details", "name": "ledger", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateLedgerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Group not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "409": {"description": "Ledger name already exists", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/ledger/v1/get-ledger": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledgers"],
                "summary": "List ledgers",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "companyId", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Matches name or description", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/ledger/v1/{id}/balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ledgers"],
                "summary": "Get a ledger's balance",
                "parameters": [
                    {"type": "string", "description": "Ledger ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Date (YYYY-MM-DD)", "name": "asOfDate", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Ledger not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "pagination": {"$ref": "#/definitions/domain.PageInfo"},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.PageInfo": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "dto.CreateCompanyRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 255}
            }
        },
        "dto.CreateGroupRequest": {
            "type": "object",
            "required": ["groupName", "groupType"],
            "properties": {
                "companyId": {"type": "string"},
                "groupName": {"type": "string", "maxLength": 255},
                "parentGroupId": {"type": "string"},
                "groupType": {"type": "string", "enum": ["Asset", "Liability", "Income", "Expense", "Capital"]},
                "prohibit": {"type": "string", "enum": ["Yes", "No"]},
                "sortOrder": {"type": "integer"},
                "formConfig": {"type": "object"}
            }
        },
        "dto.CreateLedgerRequest": {
            "type": "object",
            "required": ["ledgerName", "acgroup"],
            "properties": {
                "companyId": {"type": "string"},
                "ledgerName": {"type": "string", "maxLength": 255},
                "acgroup": {"type": "string"},
                "openingBalance": {"type": "number"},
                "balanceType": {"type": "string", "enum": ["Debit", "Credit"]},
                "description": {"type": "string"},
                "address": {"type": "string"},
                "station": {"type": "string"},
                "sortOrder": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pharma Backend API",
	Description:      "Chart of accounts for pharmacy billing: companies, account groups and ledgers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
