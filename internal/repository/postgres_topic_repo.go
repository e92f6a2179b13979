package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/newsboard/internal/model"
)

// PostgresTopicRepo はPostgreSQLを使用したトピックリポジトリ。
type PostgresTopicRepo struct {
	db *sql.DB
}

// NewPostgresTopicRepo はPostgresTopicRepoを生成する。
func NewPostgresTopicRepo(db *sql.DB) *PostgresTopicRepo {
	return &PostgresTopicRepo{db: db}
}

// List は全トピックをslug昇順で返す。
func (r *PostgresTopicRepo) List(ctx context.Context) ([]model.Topic, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slug, description FROM topics ORDER BY slug`,
	)
	if err != nil {
		return nil, fmt.Errorf("トピック一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	topics := []model.Topic{}
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("トピック行の読み取りに失敗しました: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("トピック一覧の走査に失敗しました: %w", err)
	}

	return topics, nil
}

// FindBySlug は指定slugのトピックを取得する。見つからない場合はnilを返す。
func (r *PostgresTopicRepo) FindBySlug(ctx context.Context, slug string) (*model.Topic, error) {
	t := &model.Topic{}

	err := r.db.QueryRowContext(ctx,
		`SELECT slug, description FROM topics WHERE slug = $1`,
		slug,
	).Scan(&t.Slug, &t.Description)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("トピックの取得に失敗しました: %w", err)
	}

	return t, nil
}

// compile-time interface check
var _ TopicRepository = (*PostgresTopicRepo)(nil)
