package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/newsboard/internal/model"
)

// ArticleServiceInterface は記事ハンドラーが必要とするサービスインターフェース。
type ArticleServiceInterface interface {
	// List は記事一覧をコメント数付きで返す。
	List(ctx context.Context, sortBy, orderBy, topic string) ([]model.ArticleWithCount, error)
	// Get は指定IDの記事をコメント数付きで返す。
	Get(ctx context.Context, idStr string) (*model.ArticleWithCount, error)
	// UpdateVotes はvotesを原子的に加算した記事を返す。
	UpdateVotes(ctx context.Context, idStr string, incVotes json.RawMessage) (*model.Article, error)
}

// ArticleHandler は記事管理のHTTPハンドラー。
type ArticleHandler struct {
	service ArticleServiceInterface
}

// NewArticleHandler はArticleHandlerを生成する。
func NewArticleHandler(service ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// articleResponse はコメント数付き記事のAPIレスポンス。
type articleResponse struct {
	ArticleID    int       `json:"article_id"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Topic        string    `json:"topic"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
}

// updatedArticleResponse は投票更新後の記事のAPIレスポンス。
// comment_countは含まない（更新文のRETURNINGが返す列のみ）。
type updatedArticleResponse struct {
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `json:"votes"`
}

// voteRequest は投票更新リクエストのボディ。
// inc_votesの欠落と型不正を区別するため、生のJSON値のまま受け取り
// サービス層で検証する。
type voteRequest struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// toArticleResponse はドメインのArticleWithCountをレスポンス型に変換する。
func toArticleResponse(a model.ArticleWithCount) articleResponse {
	return articleResponse{
		ArticleID:    a.ArticleID,
		Author:       a.Author,
		Title:        a.Title,
		Body:         a.Body,
		Topic:        a.Topic,
		CreatedAt:    a.CreatedAt,
		Votes:        a.Votes,
		CommentCount: a.CommentCount,
	}
}

// ListArticles は記事一覧を取得する。
// GET /api/articles?sort_by=created_at&order_by=desc&topic=cats
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort_by")
	orderBy := r.URL.Query().Get("order_by")
	topicFilter := r.URL.Query().Get("topic")

	articles, err := h.service.List(r.Context(), sortBy, orderBy, topicFilter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]articleResponse, len(articles))
	for i, a := range articles {
		results[i] = toArticleResponse(a)
	}

	writeJSON(w, http.StatusOK, map[string][]articleResponse{"articles": results})
}

// GetArticle は記事詳細をコメント数付きで取得する。
// GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "article_id")

	a, err := h.service.Get(r.Context(), idStr)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]articleResponse{"article": toArticleResponse(*a)})
}

// UpdateArticleVotes は記事の投票数を加算する。
// PATCH /api/articles/:article_id  body: {"inc_votes": 10}
func (h *ArticleHandler) UpdateArticleVotes(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "article_id")

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewBadRequestError())
		return
	}

	a, err := h.service.UpdateVotes(r.Context(), idStr, req.IncVotes)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]updatedArticleResponse{
		"article": {
			ArticleID: a.ArticleID,
			Author:    a.Author,
			Title:     a.Title,
			Body:      a.Body,
			Topic:     a.Topic,
			CreatedAt: a.CreatedAt,
			Votes:     a.Votes,
		},
	})
}
