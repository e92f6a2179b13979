package handler

import "net/http"

// endpointInfo はAPIエンドポイントの説明。
type endpointInfo struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	ExampleBody string   `json:"exampleBody,omitempty"`
}

// endpointsDocument は全エンドポイントの静的なケイパビリティ一覧。
var endpointsDocument = map[string]endpointInfo{
	"GET /api": {
		Description: "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves a single user by username",
	},
	"GET /api/articles": {
		Description: "serves an array of all articles with comment counts",
		Queries:     []string{"sort_by", "order_by", "topic"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article with its comment count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "increments the vote count of an article and serves the updated article",
		ExampleBody: `{"inc_votes": 10}`,
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves an array of comments for the given article",
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to the given article and serves the created comment",
		ExampleBody: `{"username": "butter_bridge", "body": "testing"}`,
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes the given comment and serves no content",
	},
}

// APIHandler はAPIのケイパビリティ一覧を返すHTTPハンドラー。
type APIHandler struct{}

// NewAPIHandler はAPIHandlerを生成する。
func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// GetEndpoints は利用可能な全エンドポイントの一覧を返す。
// GET /api
func (h *APIHandler) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]map[string]endpointInfo{"endpoints": endpointsDocument})
}
