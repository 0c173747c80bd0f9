package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TARS Club API",
        "description": "Backend for the TARS club website",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Public", "description": "Public site content"},
        {"name": "Authentication", "description": "Account registration and sessions"},
        {"name": "Admin", "description": "JWT-guarded content management"}
    ],
    "paths": {
        "/api/health/": {
            "get": {
                "tags": ["Public"],
                "summary": "Health check with database probe",
                "responses": {
                    "200": {"description": "Healthy"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/api/info/": {
            "get": {
                "tags": ["Public"],
                "summary": "API identification",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/home/": {
            "get": {
                "tags": ["Public"],
                "summary": "Home page aggregate",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/HomeResponse"}}
                }
            }
        },
        "/api/site-settings/": {
            "get": {
                "tags": ["Public"],
                "summary": "List site settings (zero or one element)",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/sponsors/": {
            "get": {
                "tags": ["Public"],
                "summary": "List active sponsors",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/social-links/": {
            "get": {
                "tags": ["Public"],
                "summary": "List active social links",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/classes/": {
            "get": {
                "tags": ["Public"],
                "summary": "List active classes with derived lifecycle state",
                "parameters": [
                    {"name": "difficulty", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/resources/": {
            "get": {
                "tags": ["Public"],
                "summary": "List active learning resources",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "featured", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/auth/register/": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register member account",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/api/auth/login/": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate by email and password",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/auth/token/refresh/": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Rotate refresh token",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Expired or revoked token"}
                }
            }
        },
        "/api/auth/logout/": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Revoke refresh token",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/auth/profile/": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/admin/export/sponsors": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export sponsor roster as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/api/admin/export/resources": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export resource catalog as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        }
    },
    "definitions": {
        "HomeResponse": {
            "type": "object",
            "properties": {
                "site_settings": {"type": "object"},
                "sponsors": {"type": "array", "items": {"type": "object"}},
                "social_links": {"type": "array", "items": {"type": "object"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
