// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler
// annotations.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.meResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/students": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List students",
                "parameters": [
                    {"type": "integer", "description": "Page size (max 1000)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Records to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.studentResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Create a student",
                "parameters": [
                    {"description": "Student details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.studentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.studentResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get a student by id",
                "parameters": [{"type": "string", "description": "Student id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.studentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Replace a student",
                "parameters": [
                    {"type": "string", "description": "Student id", "name": "id", "in": "path", "required": true},
                    {"description": "Student details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.studentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.studentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Delete a student",
                "parameters": [{"type": "string", "description": "Student id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/companies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "List companies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.companyResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "Create a company",
                "parameters": [
                    {"description": "Company details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.companyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.companyResponse"}}
                }
            }
        },
        "/companies/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["companies"],
                "summary": "Get a company by id",
                "parameters": [{"type": "string", "description": "Company id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.companyResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["companies"],
                "summary": "Replace a company",
                "parameters": [
                    {"type": "string", "description": "Company id", "name": "id", "in": "path", "required": true},
                    {"description": "Company details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.companyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.companyResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["companies"],
                "summary": "Delete a company",
                "parameters": [{"type": "string", "description": "Company id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/drives": {
            "get": {
                "produces": ["application/json"],
                "tags": ["drives"],
                "summary": "List drives",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.driveResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drives"],
                "summary": "Create a drive",
                "parameters": [
                    {"description": "Drive details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.driveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.driveResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/drives/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["drives"],
                "summary": "Get a drive by id",
                "parameters": [{"type": "string", "description": "Drive id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.driveResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["drives"],
                "summary": "Replace a drive",
                "parameters": [
                    {"type": "string", "description": "Drive id", "name": "id", "in": "path", "required": true},
                    {"description": "Drive details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.driveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.driveResponse"}},
                    "404": {"description": "drive or company not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["drives"],
                "summary": "Delete a drive",
                "parameters": [{"type": "string", "description": "Drive id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/offers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "List offers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.offerResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Create an offer",
                "parameters": [
                    {"description": "Offer details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.offerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.offerResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/offers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Get an offer by id",
                "parameters": [{"type": "string", "description": "Offer id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.offerResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["offers"],
                "summary": "Delete an offer",
                "parameters": [{"type": "string", "description": "Offer id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/analytics/department-placements": {
            "get": {"tags": ["analytics"], "summary": "Placed students per department", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.countSeries"}}}}
        },
        "/analytics/company-packages": {
            "get": {"tags": ["analytics"], "summary": "Advertised package per company name", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.amountSeries"}}}}
        },
        "/analytics/yearly-trends": {
            "get": {"tags": ["analytics"], "summary": "Offers per year", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.countSeries"}}}}
        },
        "/analytics/role-distribution": {
            "get": {"tags": ["analytics"], "summary": "Offers per role", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.countSeries"}}}}
        },
        "/analytics/stats": {
            "get": {"tags": ["analytics"], "summary": "Dashboard totals, placement rate and average package", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Stats"}}}}
        },
        "/seed": {
            "post": {"tags": ["seed"], "summary": "Seed sample data", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.seedResponse"}}}}
        }
    },
    "definitions": {
        "domain.Stats": {
            "type": "object",
            "properties": {
                "total_students": {"type": "integer"},
                "total_companies": {"type": "integer"},
                "total_drives": {"type": "integer"},
                "total_offers": {"type": "integer"},
                "placed_students": {"type": "integer"},
                "placement_rate": {"type": "number"},
                "average_package": {"type": "number"}
            }
        },
        "handler.countSeries": {
            "type": "object",
            "properties": {"labels": {"type": "array", "items": {"type": "string"}}, "values": {"type": "array", "items": {"type": "integer"}}}
        },
        "handler.amountSeries": {
            "type": "object",
            "properties": {"labels": {"type": "array", "items": {"type": "string"}}, "values": {"type": "array", "items": {"type": "number"}}}
        },
        "handler.ErrorResponse": {"type": "object", "properties": {"detail": {"type": "string"}}},
        "handler.messageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handler.tokenResponse": {"type": "object", "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}}},
        "handler.meResponse": {"type": "object", "properties": {"username": {"type": "string"}, "email": {"type": "string"}}},
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.studentRequest": {
            "type": "object",
            "required": ["cgpa", "department", "email", "name", "phone", "roll_number"],
            "properties": {
                "name": {"type": "string"}, "roll_number": {"type": "string"}, "department": {"type": "string"},
                "cgpa": {"type": "number", "minimum": 0, "maximum": 10}, "email": {"type": "string"}, "phone": {"type": "string"}
            }
        },
        "handler.studentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "roll_number": {"type": "string"}, "department": {"type": "string"},
                "cgpa": {"type": "number"}, "email": {"type": "string"}, "phone": {"type": "string"}, "created_at": {"type": "string"}
            }
        },
        "handler.companyRequest": {
            "type": "object",
            "required": ["domain", "location", "name", "package"],
            "properties": {
                "name": {"type": "string"}, "domain": {"type": "string"}, "package": {"type": "number", "minimum": 0},
                "location": {"type": "string"}, "website": {"type": "string"}
            }
        },
        "handler.companyResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "domain": {"type": "string"}, "package": {"type": "number"},
                "location": {"type": "string"}, "website": {"type": "string"}, "created_at": {"type": "string"}
            }
        },
        "handler.driveRequest": {
            "type": "object",
            "required": ["company_id", "date", "eligible_departments", "role"],
            "properties": {
                "company_id": {"type": "string"}, "date": {"type": "string", "example": "2025-03-01"},
                "eligible_departments": {"type": "array", "items": {"type": "string"}}, "role": {"type": "string"}, "description": {"type": "string"}
            }
        },
        "handler.driveResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "company_id": {"type": "string"}, "company_name": {"type": "string"}, "date": {"type": "string"},
                "eligible_departments": {"type": "array", "items": {"type": "string"}}, "role": {"type": "string"},
                "description": {"type": "string"}, "created_at": {"type": "string"}
            }
        },
        "handler.offerRequest": {
            "type": "object",
            "required": ["company_id", "date", "package", "role", "student_id"],
            "properties": {
                "student_id": {"type": "string"}, "company_id": {"type": "string"}, "package": {"type": "number", "minimum": 0},
                "role": {"type": "string"}, "date": {"type": "string", "example": "2024-06-10"}
            }
        },
        "handler.offerResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "student_id": {"type": "string"}, "student_name": {"type": "string"}, "company_id": {"type": "string"},
                "company_name": {"type": "string"}, "package": {"type": "number"}, "role": {"type": "string"}, "date": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handler.seedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}, "students": {"type": "integer"}, "companies": {"type": "integer"},
                "drives": {"type": "integer"}, "offers": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "PlacementIQ API",
	Description:      "College placement tracking: students, companies, drives, offers and analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
