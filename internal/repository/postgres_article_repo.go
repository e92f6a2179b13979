package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/newsboard/internal/model"
)

// PostgresArticleRepo はPostgreSQLを使用した記事リポジトリ。
type PostgresArticleRepo struct {
	db *sql.DB
}

// NewPostgresArticleRepo はPostgresArticleRepoを生成する。
func NewPostgresArticleRepo(db *sql.DB) *PostgresArticleRepo {
	return &PostgresArticleRepo{db: db}
}

// FindByID は指定IDの記事をコメント数付きで取得する。見つからない場合はnilを返す。
func (r *PostgresArticleRepo) FindByID(ctx context.Context, id int) (*model.ArticleWithCount, error) {
	a := &model.ArticleWithCount{}

	err := r.db.QueryRowContext(ctx,
		`SELECT a.article_id, a.author, a.title, a.body, a.topic, a.created_at, a.votes,
		        COUNT(c.comment_id)::int AS comment_count
		 FROM articles a
		 LEFT JOIN comments c ON c.article_id = a.article_id
		 WHERE a.article_id = $1
		 GROUP BY a.article_id`,
		id,
	).Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
		&a.CreatedAt, &a.Votes, &a.CommentCount,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("記事の取得に失敗しました: %w", err)
	}

	return a, nil
}

// sortColumn はソートキーをSQLのカラム/集計式に解決する。
// 許可リスト検証はサービス層で済んでいるが、ここでも固定のswitchで
// 解決することで、ユーザー入力がクエリ文字列へ到達する経路を断つ。
func sortColumn(key model.SortKey) string {
	switch key {
	case model.SortKeyAuthor:
		return "a.author"
	case model.SortKeyTitle:
		return "a.title"
	case model.SortKeyArticleID:
		return "a.article_id"
	case model.SortKeyTopic:
		return "a.topic"
	case model.SortKeyVotes:
		return "a.votes"
	case model.SortKeyCommentCount:
		return "comment_count"
	default:
		return "a.created_at"
	}
}

// sortDirection はソート方向をSQLのキーワードに解決する。
func sortDirection(order model.SortOrder) string {
	if order == model.SortOrderAsc {
		return "ASC"
	}
	return "DESC"
}

// List は記事一覧をコメント数付きで返す。
// topicが空でない場合はバインドパラメータによる完全一致でフィルタする。
func (r *PostgresArticleRepo) List(
	ctx context.Context,
	sortKey model.SortKey,
	order model.SortOrder,
	topic string,
) ([]model.ArticleWithCount, error) {
	query := `SELECT a.article_id, a.author, a.title, a.body, a.topic, a.created_at, a.votes,
	                 COUNT(c.comment_id)::int AS comment_count
	          FROM articles a
	          LEFT JOIN comments c ON c.article_id = a.article_id`

	args := []interface{}{}
	if topic != "" {
		query += " WHERE a.topic = $1"
		args = append(args, topic)
	}

	query += " GROUP BY a.article_id ORDER BY " + sortColumn(sortKey) + " " + sortDirection(order)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("記事一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	articles := []model.ArticleWithCount{}
	for rows.Next() {
		var a model.ArticleWithCount
		if err := rows.Scan(
			&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
			&a.CreatedAt, &a.Votes, &a.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("記事行の読み取りに失敗しました: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("記事一覧の走査に失敗しました: %w", err)
	}

	return articles, nil
}

// IncrementVotes はvotesを原子的に加算し、更新後の記事を返す。
// 対象行が存在しない場合はnilを返す。
func (r *PostgresArticleRepo) IncrementVotes(ctx context.Context, id, delta int) (*model.Article, error) {
	a := &model.Article{}

	err := r.db.QueryRowContext(ctx,
		`UPDATE articles SET votes = votes + $1
		 WHERE article_id = $2
		 RETURNING article_id, author, title, body, topic, created_at, votes`,
		delta, id,
	).Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
		&a.CreatedAt, &a.Votes,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("記事の投票数更新に失敗しました: %w", err)
	}

	return a, nil
}

// compile-time interface check
var _ ArticleRepository = (*PostgresArticleRepo)(nil)
