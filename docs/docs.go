// Package docs registers the OpenAPI description of the brainly API with
// swag so gofiber/swagger can serve it. Keep it in step with the handler
// annotations in internal/server.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/signup": {
            "post": {
                "description": "Create an account. Usernames are 3-10 characters; passwords 8-20 with upper, lower, digit and special characters.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User signup",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.Credentials"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.MessageResponse"}},
                    "403": {"description": "Username taken", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "411": {"description": "Invalid input", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/signin": {
            "post": {
                "description": "Exchange credentials for a token to send in the Authorization header.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User signin",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.Credentials"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.TokenResponse"}},
                    "403": {"description": "Unknown user or wrong password", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/content": {
            "get": {
                "security": [{"TokenAuth": []}],
                "description": "List the caller's saved content, oldest first, with tags expanded.",
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "List content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.ContentListResponse"}},
                    "403": {"description": "Not logged in", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "description": "Save a link. Tags are tag ids or titles; unknown titles are created.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Create content",
                "parameters": [
                    {
                        "description": "Content",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CreateContentInput"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/server.ContentCreatedResponse"}},
                    "403": {"description": "Not logged in", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "411": {"description": "Invalid input", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "description": "Delete one of the caller's content items.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Delete content",
                "parameters": [
                    {
                        "description": "Content id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/server.DeleteContentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.MessageResponse"}},
                    "400": {"description": "Missing content id", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Not logged in, or not the owner", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/brain/share": {
            "post": {
                "security": [{"TokenAuth": []}],
                "description": "share=true returns the caller's public hash, creating it if needed. share=false removes it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["share"],
                "summary": "Enable or disable sharing",
                "parameters": [
                    {
                        "description": "Share toggle",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/server.ShareRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Hash, or removal message", "schema": {"$ref": "#/definitions/server.ShareResponse"}},
                    "403": {"description": "Not logged in", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/brain/{shareLink}": {
            "get": {
                "description": "Public, read-only view of a shared collection.",
                "produces": ["application/json"],
                "tags": ["share"],
                "summary": "Get shared brain",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Share hash",
                        "name": "shareLink",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SharedBrain"}},
                    "404": {"description": "Unknown hash", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "411": {"description": "Owner missing", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ContentDetail": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "link": {"type": "string"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/models.Tag"}},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["twitter", "youtube"]},
                "userId": {"type": "string"}
            }
        },
        "models.Content": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "link": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["twitter", "youtube"]},
                "userId": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/models.FieldViolation"}},
                "message": {"type": "string"}
            }
        },
        "models.FieldViolation": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.Tag": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "server.ContentCreatedResponse": {
            "type": "object",
            "properties": {
                "content": {"$ref": "#/definitions/models.Content"},
                "message": {"type": "string"}
            }
        },
        "server.ContentListResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/models.ContentDetail"}}
            }
        },
        "server.DeleteContentRequest": {
            "type": "object",
            "properties": {
                "contentId": {"type": "string"}
            }
        },
        "server.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "server.ShareRequest": {
            "type": "object",
            "properties": {
                "share": {"type": "boolean"}
            }
        },
        "server.ShareResponse": {
            "type": "object",
            "properties": {
                "hash": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "server.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "service.CreateContentInput": {
            "type": "object",
            "required": ["link", "title", "type"],
            "properties": {
                "link": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["twitter", "youtube"]}
            }
        },
        "service.Credentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "minLength": 8, "maxLength": 20},
                "username": {"type": "string", "minLength": 3, "maxLength": 10}
            }
        },
        "service.SharedBrain": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/models.ContentDetail"}},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "TokenAuth": {
            "description": "The bare token returned by /signin.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Brainly API",
	Description:      "Save links with tags and share your collection through a public link.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
