// Package docs serves the swagger document for the api server.
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
        "/health": {
            "get": {"tags": ["health"], "summary": "check rpc and cache", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/nonce": {
            "post": {"tags": ["auth"], "summary": "issue a sign-in nonce for an address", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/sign": {
            "post": {"tags": ["auth"], "summary": "exchange a signed nonce for a token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/auth/signingMsgTemplate": {
            "get": {"tags": ["auth"], "summary": "message template the wallet signs", "responses": {"200": {"description": "OK"}}}
        },
        "/explore": {
            "post": {"tags": ["explore"], "summary": "start an explore session", "responses": {"200": {"description": "OK"}}}
        },
        "/explore/{sessionId}": {
            "get": {"tags": ["explore"], "summary": "current listing of a session", "parameters": [{"type": "string", "name": "sessionId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["explore"], "summary": "close a session", "parameters": [{"type": "string", "name": "sessionId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/explore/{sessionId}/pass": {
            "post": {"tags": ["explore"], "summary": "skip to the next listing", "parameters": [{"type": "string", "name": "sessionId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/explore/{sessionId}/previous": {
            "post": {"tags": ["explore"], "summary": "go back one listing", "parameters": [{"type": "string", "name": "sessionId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/explore/{sessionId}/refresh": {
            "post": {"tags": ["explore"], "summary": "reload the listing pages", "parameters": [{"type": "string", "name": "sessionId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/listings/owner": {
            "get": {"tags": ["listing"], "summary": "listings created by an address", "parameters": [{"type": "string", "name": "address", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/listings/won": {
            "get": {"tags": ["listing"], "summary": "ended listings won by an address", "parameters": [{"type": "string", "name": "address", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/listings/{tokenId}": {
            "get": {"tags": ["listing"], "summary": "normalized listing", "parameters": [{"type": "string", "name": "tokenId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/listings/{tokenId}/end": {
            "post": {"tags": ["listing"], "summary": "end bidding on an owned listing", "parameters": [{"type": "string", "name": "tokenId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/bids": {
            "post": {"tags": ["bid"], "summary": "place a bid", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/bids/{tokenId}": {
            "get": {"tags": ["bid"], "summary": "bidding modal state", "parameters": [{"type": "string", "name": "tokenId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/bids/{tokenId}/ack": {
            "post": {"tags": ["bid"], "summary": "dismiss a finished bidding modal", "parameters": [{"type": "string", "name": "tokenId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/nfts": {
            "post": {"tags": ["nft"], "summary": "pin an image and mint a listing", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/wallet": {
            "get": {"tags": ["wallet"], "summary": "connected wallet address", "responses": {"200": {"description": "OK"}}}
        },
        "/ens/resolve/{name}": {
            "get": {"tags": ["ens"], "summary": "resolve an ens name", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/ens/reverse-resolve/{address}": {
            "get": {"tags": ["ens"], "summary": "reverse resolve an address", "parameters": [{"type": "string", "name": "address", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "retrive token from #/auth/post_auth_sign and apply with ` + "`" + `bearer {token}` + "`" + `",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "SwipeBid API",
	Description:      "Gateway for the SwipeBid marketplace contract.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
