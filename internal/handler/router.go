package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/newsboard/internal/middleware"
)

// HealthChecker はデータベース死活確認のインターフェース。*sql.DBが満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	Logger            *slog.Logger
	HealthChecker     HealthChecker
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	MetricsRecorder   middleware.RequestRecorder
	MetricsHandler    http.Handler

	TopicService   TopicServiceInterface
	ArticleService ArticleServiceInterface
	CommentService CommentServiceInterface
	UserService    UserServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → Logging → Recovery → SecurityHeaders → CORS → Metrics → RateLimit(General)
//
// 書き込み系のエンドポイント（POST/PATCH/DELETE）には専用のレート制限を追加する。
// 未定義のパス・メソッドはすべて 404 {"msg":"path not found"} を返す。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	if deps.MetricsRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsRecorder))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteErrorResponse(w, http.StatusNotFound, "path not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteErrorResponse(w, http.StatusNotFound, "path not found")
	})

	apiHandler := NewAPIHandler()
	topicHandler := NewTopicHandler(deps.TopicService)
	articleHandler := NewArticleHandler(deps.ArticleService)
	commentHandler := NewCommentHandler(deps.CommentService)
	userHandler := NewUserHandler(deps.UserService)

	// 運用系エンドポイント（レート制限の対象外）
	r.Get("/healthz", newHealthHandler(deps.HealthChecker))
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
		}

		r.Get("/", apiHandler.GetEndpoints)
		r.Get("/topics", topicHandler.ListTopics)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Get("/{username}", userHandler.GetUser)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articleHandler.ListArticles)

			r.Route("/{article_id}", func(r chi.Router) {
				r.Get("/", articleHandler.GetArticle)
				withWriteLimit(r, deps.RateLimiter).Patch("/", articleHandler.UpdateArticleVotes)

				r.Get("/comments", commentHandler.ListComments)
				withWriteLimit(r, deps.RateLimiter).Post("/comments", commentHandler.PostComment)
			})
		})

		withWriteLimit(r, deps.RateLimiter).Delete("/comments/{comment_id}", commentHandler.DeleteComment)
	})

	return r
}

// withWriteLimit は書き込み系レート制限を適用したルーターを返す。
// RateLimiterが未設定（テスト等）の場合はそのまま返す。
func withWriteLimit(r chi.Router, rl *middleware.RateLimiter) chi.Router {
	if rl == nil {
		return r
	}
	return r.With(rl.WriteMiddleware())
}

// newHealthHandler はデータベース死活確認付きのヘルスチェックハンドラーを返す。
func newHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.PingContext(r.Context()); err != nil {
				slog.Error("health check failed", slog.String("error", err.Error()))
				middleware.WriteErrorResponse(w, http.StatusServiceUnavailable, "server error")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
