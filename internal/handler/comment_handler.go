package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/newsboard/internal/comment"
	"github.com/hitoshi/newsboard/internal/model"
)

// CommentServiceInterface はコメントハンドラーが必要とするサービスインターフェース。
type CommentServiceInterface interface {
	// ListByArticle は指定記事のコメント一覧を返す。
	ListByArticle(ctx context.Context, articleIDStr string) ([]model.Comment, error)
	// Create はコメントを投稿する。
	Create(ctx context.Context, articleIDStr string, req comment.CreateRequest) (*model.Comment, error)
	// Delete はコメントを削除する。
	Delete(ctx context.Context, commentIDStr string) error
}

// CommentHandler はコメント管理のHTTPハンドラー。
type CommentHandler struct {
	service CommentServiceInterface
}

// NewCommentHandler はCommentHandlerを生成する。
func NewCommentHandler(service CommentServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// commentResponse はコメントのAPIレスポンス。
type commentResponse struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// postCommentRequest はコメント投稿リクエストのボディ。
// フィールドの欠落と空文字列を区別するためポインタで受け取る。
// 余分なフィールドは無視される。
type postCommentRequest struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

// toCommentResponse はドメインのCommentをレスポンス型に変換する。
func toCommentResponse(c model.Comment) commentResponse {
	return commentResponse{
		CommentID: c.CommentID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}

// ListComments は指定記事のコメント一覧を取得する。
// GET /api/articles/:article_id/comments
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "article_id")

	comments, err := h.service.ListByArticle(r.Context(), idStr)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]commentResponse, len(comments))
	for i, c := range comments {
		results[i] = toCommentResponse(c)
	}

	writeJSON(w, http.StatusOK, map[string][]commentResponse{"comments": results})
}

// PostComment は記事にコメントを投稿する。
// POST /api/articles/:article_id/comments  body: {"username": "...", "body": "..."}
func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "article_id")

	var req postCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewBadRequestError())
		return
	}

	c, err := h.service.Create(r.Context(), idStr, comment.CreateRequest{
		Username: req.Username,
		Body:     req.Body,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]commentResponse{"comment": toCommentResponse(*c)})
}

// DeleteComment はコメントを削除する。
// DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "comment_id")

	if err := h.service.Delete(r.Context(), idStr); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
