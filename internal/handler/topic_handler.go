package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/newsboard/internal/model"
)

// TopicServiceInterface はトピックハンドラーが必要とするサービスインターフェース。
type TopicServiceInterface interface {
	// List は全トピックを返す。
	List(ctx context.Context) ([]model.Topic, error)
}

// TopicHandler はトピック参照のHTTPハンドラー。
type TopicHandler struct {
	service TopicServiceInterface
}

// NewTopicHandler はTopicHandlerを生成する。
func NewTopicHandler(service TopicServiceInterface) *TopicHandler {
	return &TopicHandler{service: service}
}

// topicResponse はトピックのAPIレスポンス。
type topicResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ListTopics は全トピックを取得する。
// GET /api/topics
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]topicResponse, len(topics))
	for i, t := range topics {
		results[i] = topicResponse{Slug: t.Slug, Description: t.Description}
	}

	writeJSON(w, http.StatusOK, map[string][]topicResponse{"topics": results})
}
