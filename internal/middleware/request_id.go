package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// requestIDKey はコンテキストにリクエストIDを格納するためのキー型。
type requestIDKey struct{}

// requestIDHeader はリクエストIDを伝搬するHTTPヘッダー名。
const requestIDHeader = "X-Request-ID"

// ErrNoRequestID はコンテキストにリクエストIDが存在しないことを示す。
var ErrNoRequestID = errors.New("request ID not found in context")

// RequestIDFromContext はコンテキストからリクエストIDを取り出す。
func RequestIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok || id == "" {
		return "", ErrNoRequestID
	}
	return id, nil
}

// NewRequestIDMiddleware はリクエストごとに一意のIDを付与するミドルウェアを返す。
// クライアントがX-Request-IDヘッダーを送ってきた場合はその値を引き継ぎ、
// なければUUIDを生成する。IDはコンテキストとレスポンスヘッダーの両方に設定する。
func NewRequestIDMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey{}, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
