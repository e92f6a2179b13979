package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/newsboard/internal/model"
)

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// List は全ユーザーをusername昇順で返す。
func (r *PostgresUserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT username, name, avatar_url FROM users ORDER BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		var name, avatarURL sql.NullString
		if err := rows.Scan(&u.Username, &name, &avatarURL); err != nil {
			return nil, fmt.Errorf("ユーザー行の読み取りに失敗しました: %w", err)
		}
		u.Name = name.String
		u.AvatarURL = avatarURL.String
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ユーザー一覧の走査に失敗しました: %w", err)
	}

	return users, nil
}

// FindByUsername は指定usernameのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u := &model.User{}
	var name, avatarURL sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT username, name, avatar_url FROM users WHERE username = $1`,
		username,
	).Scan(&u.Username, &name, &avatarURL)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}

	u.Name = name.String
	u.AvatarURL = avatarURL.String

	return u, nil
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
