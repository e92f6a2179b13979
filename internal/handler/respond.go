// Package handler はHTTPハンドラーとルーティングを提供する。
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lib/pq"

	"github.com/hitoshi/newsboard/internal/model"
)

// errorResponse は統一エラーフォーマットのレスポンスボディ。
type errorResponse struct {
	Msg string `json:"msg"`
}

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	writeJSON(w, statusCode, errorResponse{Msg: apiErr.Msg})
}

// pqBadRequestCodes は400として扱うPostgreSQLエラーコードの許可リスト。
// 入力不正に起因するドライバーエラーのみを対象とし、これ以外の
// ドライバーエラーはすべて500に落とす。
var pqBadRequestCodes = map[pq.ErrorCode]bool{
	"22P02": true, // invalid_text_representation
	"22003": true, // numeric_value_out_of_range
	"23503": true, // foreign_key_violation
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPレスポンスに変換する。
//
// 分類は排他的かつ全域的に行う:
//  1. 分類済みのAPIError → ステータスとメッセージをそのまま返す
//  2. 許可リストに一致するPostgreSQLドライバーエラー → 400 "bad request"
//  3. それ以外 → 500 "server error"（詳細はログのみに記録する）
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqBadRequestCodes[pqErr.Code] {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewBadRequestError())
		return
	}

	slog.Error("internal server error", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Msg: "server error"})
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeBadRequest, model.ErrCodeInvalidID,
		model.ErrCodeMissingField, model.ErrCodeInvalidType,
		model.ErrCodeInvalidSort, model.ErrCodeInvalidOrder:
		return http.StatusBadRequest
	case model.ErrCodeArticleNotFound, model.ErrCodeCommentNotFound,
		model.ErrCodeUserNotFound, model.ErrCodeTopicNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
