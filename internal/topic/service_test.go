package topic

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/newsboard/internal/model"
)

// mockTopicRepo はTopicRepositoryのモック実装。
type mockTopicRepo struct {
	listFn func(ctx context.Context) ([]model.Topic, error)
}

func (m *mockTopicRepo) List(ctx context.Context) ([]model.Topic, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTopicRepo) FindBySlug(ctx context.Context, slug string) (*model.Topic, error) {
	return nil, nil
}

// TestTopicService_List は全トピック一覧が返ることをテストする。
func TestTopicService_List(t *testing.T) {
	repo := &mockTopicRepo{
		listFn: func(ctx context.Context) ([]model.Topic, error) {
			return []model.Topic{
				{Slug: "mitch", Description: "The man, the Mitch, the legend"},
				{Slug: "cats", Description: "Not dogs"},
				{Slug: "paper", Description: "what books are made of"},
			}, nil
		},
	}

	svc := NewService(repo)
	topics, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(topics) != 3 {
		t.Errorf("topics count = %d, want 3", len(topics))
	}
	if topics[0].Slug != "mitch" {
		t.Errorf("first slug = %q, want %q", topics[0].Slug, "mitch")
	}
}

// TestTopicService_List_RepoError はリポジトリのエラーがそのまま伝播することをテストする。
func TestTopicService_List_RepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockTopicRepo{
		listFn: func(ctx context.Context) ([]model.Topic, error) {
			return nil, repoErr
		},
	}

	svc := NewService(repo)
	_, err := svc.List(context.Background())
	if !errors.Is(err, repoErr) {
		t.Errorf("expected repository error to propagate, got %v", err)
	}
}
