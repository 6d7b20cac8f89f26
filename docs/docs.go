// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new account",
                "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/jobs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "List jobs",
                "parameters": [
                    {"type": "string", "name": "title", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"},
                    {"enum": ["full-time", "part-time", "contract", "internship", "remote"], "type": "string", "name": "jobType", "in": "query"},
                    {"enum": ["active", "closed"], "type": "string", "default": "active", "name": "status", "in": "query"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "Create a job posting",
                "parameters": [{"in": "body", "name": "job", "required": true, "schema": {"$ref": "#/definitions/dto.CreateJobRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "403": {"description": "Employer role required", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/jobs/employer/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "List my job postings",
                "parameters": [
                    {"enum": ["active", "closed"], "type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/jobs/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "Get a job by ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "404": {"description": "Job not found", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "Update a job posting",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "job", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateJobRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "403": {"description": "Not the owner", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "404": {"description": "Job not found", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Jobs"],
                "summary": "Delete a job posting",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "403": {"description": "Not the owner", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/applications": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "Apply for a job",
                "parameters": [{"in": "body", "name": "application", "required": true, "schema": {"$ref": "#/definitions/dto.CreateApplicationRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "400": {"description": "Validation error or job closed", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "409": {"description": "Already applied", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/applications/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "List my applications",
                "parameters": [
                    {"enum": ["applied", "reviewed", "interviewed", "rejected", "hired"], "type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/applications/job/{jobId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "List applications for a job",
                "parameters": [
                    {"type": "integer", "name": "jobId", "in": "path", "required": true},
                    {"enum": ["applied", "reviewed", "interviewed", "rejected", "hired"], "type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "403": {"description": "Not the owner", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/applications/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "Get an application",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "404": {"description": "Application not found", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/applications/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "Update an application's status",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "status", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateApplicationStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "400": {"description": "Invalid status", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Profile"],
                "summary": "Get my profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "404": {"description": "Profile not found", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Profile"],
                "summary": "Create or replace my profile",
                "parameters": [{"in": "body", "name": "profile", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateProfileRequest"}}],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Response"}}
                }
            }
        }
    },
    "definitions": {
        "dto.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldError"}}
            }
        },
        "dto.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "role"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["job_seeker", "employer"]},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.CreateJobRequest": {
            "type": "object",
            "required": ["title", "description", "location"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "salaryRange": {"type": "string"},
                "jobType": {"type": "string", "enum": ["full-time", "part-time", "contract", "internship", "remote"]},
                "requirements": {"type": "string"}
            }
        },
        "dto.UpdateJobRequest": {
            "type": "object",
            "required": ["title", "description", "location"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "salaryRange": {"type": "string"},
                "jobType": {"type": "string", "enum": ["full-time", "part-time", "contract", "internship", "remote"]},
                "requirements": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "closed"]}
            }
        },
        "dto.CreateApplicationRequest": {
            "type": "object",
            "required": ["jobId"],
            "properties": {
                "jobId": {"type": "integer"},
                "coverLetter": {"type": "string"}
            }
        },
        "dto.UpdateApplicationStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["applied", "reviewed", "interviewed", "rejected", "hired"]}
            }
        },
        "dto.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "resumeUrl": {"type": "string"},
                "companyName": {"type": "string"},
                "companyDescription": {"type": "string"}
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
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Job Board API",
	Description:      "Job postings, applications and profiles for employers and job seekers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
