package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Lineup API",
        "description": "Slot-conflict validation and replacement search for multi-venue DJ lineups",
        "version": "0.3.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedules", "description": "Schedule sessions, absences and reassignments"},
        {"name": "Switches", "description": "Conflict checks and replacement searches"},
        {"name": "Geography", "description": "Venue areas and travel buffers"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/schedules": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Parse and store a pasted schedule",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Schedule session created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Nothing parseable in the text"}
                }
            }
        },
        "/schedules/{id}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Fetch a stored schedule",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Venue slots", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Unknown or expired schedule"}
                }
            },
            "delete": {
                "tags": ["Schedules"],
                "summary": "Drop a schedule session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/schedules/{id}/switch-check": {
            "post": {
                "tags": ["Switches"],
                "summary": "Check whether a DJ can move to a target slot",
                "description": "A rejected move is a 200 response with allowed=false and a verbatim reason; rejections are not errors.",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SwitchCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "Verdict plus alternative DJs", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/schedules/{id}/replacements": {
            "post": {
                "tags": ["Switches"],
                "summary": "List DJs who can directly take a vacant slot",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReplacementsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Pool members first, then free roster DJs", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/schedules/{id}/replacements/cascade": {
            "post": {
                "tags": ["Switches"],
                "summary": "Search multi-hop replacement chains",
                "description": "An empty suggestion list means no replacement exists at any depth and is a normal outcome.",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CascadeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Direct hits followed by cascaded chains", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/schedules/{id}/absences": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Vacate a DJ's slots for one day and suggest replacements",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AbsenceRequest"}}
                ],
                "responses": {
                    "200": {"description": "Vacated slots with candidate lists", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/schedules/{id}/assignments": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Reassign an existing slot to another DJ",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Applied flag with rejection reason when refused", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/schedules/{id}/export": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Export a schedule as CSV or PDF",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Rendered document"}
                }
            }
        },
        "/geography/venues/{venue}/area": {
            "get": {
                "tags": ["Geography"],
                "summary": "Resolve the area a venue belongs to",
                "parameters": [
                    {"name": "venue", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Area name, Unknown for unmapped venues", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/geography/travel-time": {
            "get": {
                "tags": ["Geography"],
                "summary": "Travel buffer in minutes between two venues",
                "parameters": [
                    {"name": "from", "in": "query", "required": true, "type": "string"},
                    {"name": "to", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Venue-pair override, area pair, or default", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "SubmitScheduleRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "description": "Schedule text: 'Venue (Day):' headers followed by 'HH:MM-HH:MM DJ' lines"}
            }
        },
        "SlotPayload": {
            "type": "object",
            "required": ["venue", "start", "end"],
            "properties": {
                "venue": {"type": "string"},
                "day": {"type": "string"},
                "start": {"type": "string", "example": "23:00"},
                "end": {"type": "string", "example": "01:00"}
            }
        },
        "SwitchCheckRequest": {
            "type": "object",
            "required": ["dj", "target"],
            "properties": {
                "dj": {"type": "string"},
                "source": {"$ref": "#/definitions/SlotPayload"},
                "target": {"$ref": "#/definitions/SlotPayload"}
            }
        },
        "ReplacementsRequest": {
            "type": "object",
            "required": ["target"],
            "properties": {
                "target": {"$ref": "#/definitions/SlotPayload"},
                "excludeDj": {"type": "string"}
            }
        },
        "CascadeRequest": {
            "type": "object",
            "required": ["target"],
            "properties": {
                "target": {"$ref": "#/definitions/SlotPayload"},
                "exclude": {"type": "array", "items": {"type": "string"}}
            }
        },
        "AbsenceRequest": {
            "type": "object",
            "required": ["dj", "day"],
            "properties": {
                "dj": {"type": "string"},
                "day": {"type": "string", "example": "Friday"}
            }
        },
        "AssignmentRequest": {
            "type": "object",
            "required": ["slot", "dj"],
            "properties": {
                "slot": {"$ref": "#/definitions/SlotPayload"},
                "dj": {"type": "string"}
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
        "Envelope": {
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
