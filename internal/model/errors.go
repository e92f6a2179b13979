// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は分類済みの失敗を表す。
// クライアントへ返すメッセージを保持し、ハンドラー境界で
// HTTPステータスコードへマッピングされる。
type APIError struct {
	Code string // エラーコード
	Msg  string // クライアントに返すメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

// 定義済みエラーコード
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeInvalidID       = "INVALID_ID"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidType     = "INVALID_TYPE"
	ErrCodeInvalidSort     = "INVALID_SORT"
	ErrCodeInvalidOrder    = "INVALID_ORDER"
	ErrCodeArticleNotFound = "ARTICLE_NOT_FOUND"
	ErrCodeCommentNotFound = "COMMENT_NOT_FOUND"
	ErrCodeUserNotFound    = "USER_NOT_FOUND"
	ErrCodeTopicNotFound   = "TOPIC_NOT_FOUND"
)

// NewBadRequestError は不正なリクエストの汎用エラーを生成する。
// 数値であるべき識別子が数値でない場合などに使用する。
func NewBadRequestError() *APIError {
	return &APIError{
		Code: ErrCodeBadRequest,
		Msg:  "bad request",
	}
}

// NewInvalidArticleIDError は記事IDが数値でない場合のエラーを生成する。
func NewInvalidArticleIDError() *APIError {
	return &APIError{
		Code: ErrCodeInvalidID,
		Msg:  "invalid article ID",
	}
}

// NewInvalidCommentIDError はコメントIDが数値でない場合のエラーを生成する。
func NewInvalidCommentIDError() *APIError {
	return &APIError{
		Code: ErrCodeInvalidID,
		Msg:  "invalid ID, e.g not-an-id",
	}
}

// NewMissingFieldError は必須フィールドが欠落している場合のエラーを生成する。
func NewMissingFieldError(field string) *APIError {
	return &APIError{
		Code: ErrCodeMissingField,
		Msg:  fmt.Sprintf("missing %s property", field),
	}
}

// NewMissingVotesError はinc_votesフィールドが欠落している場合のエラーを生成する。
func NewMissingVotesError() *APIError {
	return &APIError{
		Code: ErrCodeMissingField,
		Msg:  "missing required fields",
	}
}

// NewInvalidTypeError はフィールドの型が不正な場合のエラーを生成する。
func NewInvalidTypeError() *APIError {
	return &APIError{
		Code: ErrCodeInvalidType,
		Msg:  "input property is incorrect type",
	}
}

// NewInvalidSortError はsort_byクエリが許可リスト外の場合のエラーを生成する。
func NewInvalidSortError() *APIError {
	return &APIError{
		Code: ErrCodeInvalidSort,
		Msg:  "invalid `sort_by` query",
	}
}

// NewInvalidOrderError はorder_byクエリがasc/desc以外の場合のエラーを生成する。
func NewInvalidOrderError() *APIError {
	return &APIError{
		Code: ErrCodeInvalidOrder,
		Msg:  "invalid `order` query",
	}
}

// NewArticleNotFoundError は記事が存在しない場合のエラーを生成する。
func NewArticleNotFoundError() *APIError {
	return &APIError{
		Code: ErrCodeArticleNotFound,
		Msg:  "No article found",
	}
}

// NewCommentNotFoundError はコメントが存在しない場合のエラーを生成する。
func NewCommentNotFoundError() *APIError {
	return &APIError{
		Code: ErrCodeCommentNotFound,
		Msg:  "non existent comment ID",
	}
}

// NewUserNotFoundError はユーザーが存在しない場合のエラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code: ErrCodeUserNotFound,
		Msg:  "user not found",
	}
}

// NewUsernameNotFoundError はコメント投稿者のusernameが存在しない場合のエラーを生成する。
func NewUsernameNotFoundError() *APIError {
	return &APIError{
		Code: ErrCodeUserNotFound,
		Msg:  "username does not exist",
	}
}

// NewTopicNotFoundError はtopicクエリのslugが存在しない場合のエラーを生成する。
func NewTopicNotFoundError() *APIError {
	return &APIError{
		Code: ErrCodeTopicNotFound,
		Msg:  "non-existent `topic` query",
	}
}
