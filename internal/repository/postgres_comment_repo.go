package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/newsboard/internal/model"
)

// PostgresCommentRepo はPostgreSQLを使用したコメントリポジトリ。
type PostgresCommentRepo struct {
	db *sql.DB
}

// NewPostgresCommentRepo はPostgresCommentRepoを生成する。
func NewPostgresCommentRepo(db *sql.DB) *PostgresCommentRepo {
	return &PostgresCommentRepo{db: db}
}

// ListByArticleID は指定記事のコメント一覧をcreated_at降順で返す。
// コメントがない場合は空スライスを返す。
func (r *PostgresCommentRepo) ListByArticleID(ctx context.Context, articleID int) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT comment_id, article_id, author, body, votes, created_at
		 FROM comments
		 WHERE article_id = $1
		 ORDER BY created_at DESC`,
		articleID,
	)
	if err != nil {
		return nil, fmt.Errorf("コメント一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(
			&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("コメント行の読み取りに失敗しました: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("コメント一覧の走査に失敗しました: %w", err)
	}

	return comments, nil
}

// FindByID は指定IDのコメントを取得する。見つからない場合はnilを返す。
func (r *PostgresCommentRepo) FindByID(ctx context.Context, id int) (*model.Comment, error) {
	c := &model.Comment{}

	err := r.db.QueryRowContext(ctx,
		`SELECT comment_id, article_id, author, body, votes, created_at
		 FROM comments WHERE comment_id = $1`,
		id,
	).Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("コメントの取得に失敗しました: %w", err)
	}

	return c, nil
}

// Create はコメントを作成して返す。
// comment_id、created_at、votesはデータベース側のデフォルトで付与される。
func (r *PostgresCommentRepo) Create(ctx context.Context, author, body string, articleID int) (*model.Comment, error) {
	c := &model.Comment{}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO comments (author, body, article_id)
		 VALUES ($1, $2, $3)
		 RETURNING comment_id, article_id, author, body, votes, created_at`,
		author, body, articleID,
	).Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("コメントの作成に失敗しました: %w", err)
	}

	return c, nil
}

// Delete は指定IDのコメントを削除する。
func (r *PostgresCommentRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM comments WHERE comment_id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("コメントの削除に失敗しました: %w", err)
	}
	return nil
}

// compile-time interface check
var _ CommentRepository = (*PostgresCommentRepo)(nil)
