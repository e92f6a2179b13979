// Package comment はコメントの一覧・投稿・削除のドメインロジックを提供する。
package comment

import (
	"context"
	"strconv"

	"github.com/hitoshi/newsboard/internal/model"
	"github.com/hitoshi/newsboard/internal/repository"
)

// Sanitizer はコメント本文のサニタイズ機能のインターフェース。
type Sanitizer interface {
	// Sanitize は本文からHTMLタグ等を除去したテキストを返す。
	Sanitize(raw string) string
}

// Service はコメント管理のサービス層。
// 書き込み系の操作は「ゲートを先に確認してから実行する」方式を取る。
// 記事の存在チェックとコメント挿入を並行に発行すると、存在チェックが
// 失敗したのに挿入だけが成立する競合が起こり得るため、ゲートの確認を
// 待ってから依存する書き込みを発行する。
type Service struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	sanitizer   Sanitizer
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	commentRepo repository.CommentRepository,
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
	sanitizer Sanitizer,
) *Service {
	return &Service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		sanitizer:   sanitizer,
	}
}

// CreateRequest はコメント投稿の入力。
// フィールドの存在はポインタのnilで判定する（空文字列と欠落を区別する）。
type CreateRequest struct {
	Username *string
	Body     *string
}

// ListByArticle は指定記事のコメント一覧を返す。
// IDの数値検証と記事の存在確認を行い、記事は存在するがコメントが
// ない場合は空の一覧を返す。
func (s *Service) ListByArticle(ctx context.Context, articleIDStr string) ([]model.Comment, error) {
	articleID, err := strconv.Atoi(articleIDStr)
	if err != nil {
		return nil, model.NewBadRequestError()
	}

	a, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.NewArticleNotFoundError()
	}

	return s.commentRepo.ListByArticleID(ctx, articleID)
}

// Create はコメントを投稿する。
// 検証順序: IDの数値形式 → 必須フィールド（username、bodyの宣言順で、
// 最初に欠落したフィールドで失敗する。両方を検証する）→ 記事の存在
// → usernameの存在。すべてのゲートを通過してから挿入を発行する。
// 本文は挿入前にサニタイズされる。
func (s *Service) Create(ctx context.Context, articleIDStr string, req CreateRequest) (*model.Comment, error) {
	articleID, err := strconv.Atoi(articleIDStr)
	if err != nil {
		return nil, model.NewBadRequestError()
	}

	if req.Username == nil {
		return nil, model.NewMissingFieldError("username")
	}
	if req.Body == nil {
		return nil, model.NewMissingFieldError("body")
	}

	a, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.NewArticleNotFoundError()
	}

	u, err := s.userRepo.FindByUsername(ctx, *req.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, model.NewUsernameNotFoundError()
	}

	body := *req.Body
	if s.sanitizer != nil {
		body = s.sanitizer.Sanitize(body)
	}

	return s.commentRepo.Create(ctx, *req.Username, body, articleID)
}

// Delete はコメントを削除する。
// 削除文の0行更新に頼らず、事前の存在確認で404と204を区別する。
// 存在確認を通過したコメントの削除は無条件かつ恒久的に行う。
func (s *Service) Delete(ctx context.Context, commentIDStr string) error {
	commentID, err := strconv.Atoi(commentIDStr)
	if err != nil {
		return model.NewInvalidCommentIDError()
	}

	c, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c == nil {
		return model.NewCommentNotFoundError()
	}

	return s.commentRepo.Delete(ctx, commentID)
}
