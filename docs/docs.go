// Package docs provides the Swagger specification served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "summary": "Readiness check including database connectivity",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/healthz": {
            "get": {
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/documents": {
            "get": {
                "summary": "List documents and child folders of a folder",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "name": "folder_id",
                        "in": "query",
                        "type": "string",
                        "description": "Folder to list; omit or use 'root' for the top level"
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/documents/upload": {
            "post": {
                "summary": "Upload a document and run the ingestion pipeline",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "file", "in": "formData", "type": "file", "required": true},
                    {"name": "folder_id", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Folder Not Found"},
                    "413": {"description": "File Too Large"},
                    "422": {"description": "Unprocessable Content"},
                    "502": {"description": "Generation Failed"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/documents/{id}": {
            "get": {
                "summary": "Get a document by ID",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid ID"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "summary": "Delete a document and its stored blob",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Invalid ID"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/folders": {
            "get": {
                "summary": "List all folders",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "summary": "Create a folder",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {"type": "string"},
                                "parent_id": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid Name"},
                    "404": {"description": "Parent Not Found"},
                    "409": {"description": "Duplicate Folder"}
                }
            }
        },
        "/folders/tree": {
            "get": {
                "summary": "Get the nested folder hierarchy",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Docshelf API",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
