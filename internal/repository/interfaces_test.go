package repository

import "testing"

// 各Postgres実装が対応するインターフェースを満たすことを検証
func TestPostgresTopicRepo_ImplementsInterface(t *testing.T) {
	var _ TopicRepository = (*PostgresTopicRepo)(nil)
}

func TestPostgresArticleRepo_ImplementsInterface(t *testing.T) {
	var _ ArticleRepository = (*PostgresArticleRepo)(nil)
}

func TestPostgresUserRepo_ImplementsInterface(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
}

func TestPostgresCommentRepo_ImplementsInterface(t *testing.T) {
	var _ CommentRepository = (*PostgresCommentRepo)(nil)
}

// 各コンストラクタが正しく初期化されることを検証
func TestNewRepos_Initialize(t *testing.T) {
	if NewPostgresTopicRepo(nil) == nil {
		t.Fatal("expected non-nil topic repo")
	}
	if NewPostgresArticleRepo(nil) == nil {
		t.Fatal("expected non-nil article repo")
	}
	if NewPostgresUserRepo(nil) == nil {
		t.Fatal("expected non-nil user repo")
	}
	if NewPostgresCommentRepo(nil) == nil {
		t.Fatal("expected non-nil comment repo")
	}
}
