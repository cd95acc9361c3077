// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {
            "post": {"summary": "Issue an admin token", "tags": ["auth"], "responses": {"200": {"description": "token"}, "401": {"description": "invalid credentials"}}}
        },
        "/teams": {
            "get": {"summary": "List teams, optionally fuzzy-searched by ?search=", "tags": ["teams"], "responses": {"200": {"description": "teams"}}},
            "post": {"summary": "Create a team", "tags": ["teams"], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "team"}, "409": {"description": "name taken"}}}
        },
        "/teams/{teamID}": {
            "get": {"summary": "Get a team", "tags": ["teams"], "responses": {"200": {"description": "team"}, "404": {"description": "not found"}}},
            "patch": {"summary": "Rename a team", "tags": ["teams"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "team"}}},
            "delete": {"summary": "Delete a team", "tags": ["teams"], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "deleted"}, "409": {"description": "team is grouped"}}}
        },
        "/teams/{teamID}/logo": {
            "post": {"summary": "Upload a team logo (multipart field logo)", "tags": ["teams"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "team"}, "503": {"description": "storage not configured"}}}
        },
        "/tournaments": {
            "get": {"summary": "List tournaments", "tags": ["tournaments"], "responses": {"200": {"description": "tournaments"}}},
            "post": {"summary": "Create a tournament", "tags": ["tournaments"], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "tournament"}}}
        },
        "/tournaments/{tournamentID}": {
            "get": {"summary": "Get a tournament", "tags": ["tournaments"], "responses": {"200": {"description": "tournament"}}},
            "patch": {"summary": "Update a tournament", "tags": ["tournaments"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "tournament"}}},
            "delete": {"summary": "Delete a tournament", "tags": ["tournaments"], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "deleted"}}}
        },
        "/tournaments/{tournamentID}/groups": {
            "get": {"summary": "List groups with their teams", "tags": ["groups"], "responses": {"200": {"description": "groups"}}},
            "post": {"summary": "Create a group", "tags": ["groups"], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "group"}, "409": {"description": "limit reached"}}}
        },
        "/tournaments/{tournamentID}/groups/{groupID}": {
            "get": {"summary": "Get a group", "tags": ["groups"], "responses": {"200": {"description": "group"}}}
        },
        "/tournaments/{tournamentID}/groups/{groupID}/teams": {
            "post": {"summary": "Add a team to a group", "tags": ["groups"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "group"}, "409": {"description": "group full or team already grouped"}}}
        },
        "/tournaments/{tournamentID}/groups/{groupID}/teams/{teamID}": {
            "delete": {"summary": "Remove a team from a group", "tags": ["groups"], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "removed"}}}
        },
        "/tournaments/{tournamentID}/matches": {
            "get": {"summary": "List matches (?showMatches=played|pending)", "tags": ["matches"], "responses": {"200": {"description": "matches"}}}
        },
        "/tournaments/{tournamentID}/matches/regular-season": {
            "post": {"summary": "Generate the regular season", "tags": ["matches"], "security": [{"BearerAuth": []}], "responses": {"201": {"description": "matches"}, "409": {"description": "already generated"}}}
        },
        "/tournaments/{tournamentID}/matches/{matchID}": {
            "get": {"summary": "Get a match", "tags": ["matches"], "responses": {"200": {"description": "match"}}},
            "patch": {"summary": "Report a score", "tags": ["matches"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "match"}, "422": {"description": "invalid score"}}}
        },
        "/tournaments/{tournamentID}/standings": {
            "get": {"summary": "Conference standings with playoff seeding", "tags": ["standings"], "responses": {"200": {"description": "standings"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tournament Standings API",
	Description:      "Teams, groups, regular-season matches and conference standings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
