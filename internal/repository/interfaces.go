// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/newsboard/internal/model"
)

// TopicRepository はトピックデータの永続化インターフェース。
type TopicRepository interface {
	// List は全トピックを返す。
	List(ctx context.Context) ([]model.Topic, error)

	// FindBySlug は指定slugのトピックを取得する。見つからない場合はnilを返す。
	// topicクエリフィルタの存在チェック（ライブ参照）に使用する。
	FindBySlug(ctx context.Context, slug string) (*model.Topic, error)
}

// ArticleRepository は記事データの永続化インターフェース。
type ArticleRepository interface {
	// FindByID は指定IDの記事をコメント数付きで取得する。見つからない場合はnilを返す。
	// comment_countはLEFT JOINで集計され、コメント0件でも記事は返る。
	FindByID(ctx context.Context, id int) (*model.ArticleWithCount, error)

	// List は記事一覧をコメント数付きで返す。
	// topicが空でない場合は完全一致でフィルタする（バインドパラメータとして渡す）。
	// sortKeyは呼び出し側で許可リスト検証済みであることを前提とし、
	// リポジトリ内でも固定のswitchでカラム名に解決する。ユーザー入力を
	// クエリ文字列へ連結することはない。
	List(ctx context.Context, sortKey model.SortKey, order model.SortOrder, topic string) ([]model.ArticleWithCount, error)

	// IncrementVotes はvotesを原子的に加算し、更新後の記事を返す。
	// 対象行が存在しない場合（0行更新）はnilを返す。
	IncrementVotes(ctx context.Context, id, delta int) (*model.Article, error)
}

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// List は全ユーザーを返す。
	List(ctx context.Context) ([]model.User, error)

	// FindByUsername は指定usernameのユーザーを取得する。見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// CommentRepository はコメントデータの永続化インターフェース。
type CommentRepository interface {
	// ListByArticleID は指定記事のコメント一覧を返す。
	// 記事は存在するがコメントがない場合は空スライスを返す（エラーにしない）。
	ListByArticleID(ctx context.Context, articleID int) ([]model.Comment, error)

	// FindByID は指定IDのコメントを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.Comment, error)

	// Create はコメントを作成して返す。
	// comment_id、created_at、votes=0はサーバー側で付与される。
	Create(ctx context.Context, author, body string, articleID int) (*model.Comment, error)

	// Delete は指定IDのコメントを削除する。
	// 冪等性は保証しない。呼び出し側が事前に存在を確認すること。
	Delete(ctx context.Context, id int) error
}
