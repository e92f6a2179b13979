package article

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hitoshi/newsboard/internal/model"
)

// --- テスト用モック ---

// mockArticleRepo はArticleRepositoryのモック実装。
type mockArticleRepo struct {
	findByIDFn       func(ctx context.Context, id int) (*model.ArticleWithCount, error)
	listFn           func(ctx context.Context, sortKey model.SortKey, order model.SortOrder, topic string) ([]model.ArticleWithCount, error)
	incrementVotesFn func(ctx context.Context, id, delta int) (*model.Article, error)
}

func (m *mockArticleRepo) FindByID(ctx context.Context, id int) (*model.ArticleWithCount, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockArticleRepo) List(ctx context.Context, sortKey model.SortKey, order model.SortOrder, topic string) ([]model.ArticleWithCount, error) {
	if m.listFn != nil {
		return m.listFn(ctx, sortKey, order, topic)
	}
	return nil, nil
}

func (m *mockArticleRepo) IncrementVotes(ctx context.Context, id, delta int) (*model.Article, error) {
	if m.incrementVotesFn != nil {
		return m.incrementVotesFn(ctx, id, delta)
	}
	return nil, nil
}

// mockTopicRepo はTopicRepositoryのモック実装。
type mockTopicRepo struct {
	findBySlugFn func(ctx context.Context, slug string) (*model.Topic, error)
}

func (m *mockTopicRepo) List(ctx context.Context) ([]model.Topic, error) {
	return nil, nil
}

func (m *mockTopicRepo) FindBySlug(ctx context.Context, slug string) (*model.Topic, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, nil
}

func testArticle(id int) model.ArticleWithCount {
	return model.ArticleWithCount{
		Article: model.Article{
			ArticleID: id,
			Author:    "butter_bridge",
			Title:     "Living in the shadow of a great man",
			Body:      "I find this existence challenging",
			Topic:     "mitch",
			CreatedAt: time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC),
			Votes:     100,
		},
		CommentCount: 11,
	}
}

// --- List テスト ---

// TestArticleService_List_Defaults はソート指定なしでcreated_at降順が
// リポジトリに渡されることをテストする。
func TestArticleService_List_Defaults(t *testing.T) {
	repo := &mockArticleRepo{
		listFn: func(ctx context.Context, sortKey model.SortKey, order model.SortOrder, topic string) ([]model.ArticleWithCount, error) {
			if sortKey != model.SortKeyCreatedAt {
				t.Errorf("sortKey = %q, want %q", sortKey, model.SortKeyCreatedAt)
			}
			if order != model.SortOrderDesc {
				t.Errorf("order = %q, want %q", order, model.SortOrderDesc)
			}
			if topic != "" {
				t.Errorf("topic = %q, want empty", topic)
			}
			return []model.ArticleWithCount{testArticle(1)}, nil
		},
	}

	svc := NewService(repo, &mockTopicRepo{})
	articles, err := svc.List(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("articles count = %d, want 1", len(articles))
	}
}

// TestArticleService_List_InvalidSortKey は許可リスト外のsort_byが
// 拒否され、リポジトリに到達しないことをテストする。
func TestArticleService_List_InvalidSortKey(t *testing.T) {
	repo := &mockArticleRepo{
		listFn: func(ctx context.Context, sortKey model.SortKey, order model.SortOrder, topic string) ([]model.ArticleWithCount, error) {
			t.Error("repository should not be reached for invalid sort_by")
			return nil, nil
		},
	}

	svc := NewService(repo, &mockTopicRepo{})
	_, err := svc.List(context.Background(), "not_a_column; DROP TABLE articles;", "", "")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Msg != "invalid `sort_by` query" {
		t.Errorf("msg = %q, want %q", apiErr.Msg, "invalid `sort_by` query")
	}
}

// TestArticleService_List_InvalidOrder はasc/desc以外のorderが拒否されることをテストする。
func TestArticleService_List_InvalidOrder(t *testing.T) {
	svc := NewService(&mockArticleRepo{}, &mockTopicRepo{})
	_, err := svc.List(context.Background(), "votes", "sideways", "")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Msg != "invalid `order` query" {
		t.Errorf("msg = %q, want %q", apiErr.Msg, "invalid `order` query")
	}
}

// TestArticleService_List_UnknownTopic は存在しないtopicクエリが
// 404相当のエラーになることをテストする。
func TestArticleService_List_UnknownTopic(t *testing.T) {
	topicRepo := &mockTopicRepo{
		findBySlugFn: func(ctx context.Context, slug string) (*model.Topic, error) {
			if slug != "dogs" {
				t.Errorf("slug = %q, want %q", slug, "dogs")
			}
			return nil, nil
		},
	}

	svc := NewService(&mockArticleRepo{}, topicRepo)
	_, err := svc.List(context.Background(), "", "", "dogs")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Msg != "non-existent `topic` query" {
		t.Errorf("msg = %q, want %q", apiErr.Msg, "non-existent `topic` query")
	}
}

// TestArticleService_List_ExistingTopicWithoutArticles は存在するtopicで
// 記事が0件の場合に空の一覧が返ることをテストする。
func TestArticleService_List_ExistingTopicWithoutArticles(t *testing.T) {
	topicRepo := &mockTopicRepo{
		findBySlugFn: func(ctx context.Context, slug string) (*model.Topic, error) {
			return &model.Topic{Slug: "paper", Description: "what books are made of"}, nil
		},
	}
	repo := &mockArticleRepo{
		listFn: func(ctx context.Context, sortKey model.SortKey, order model.SortOrder, topic string) ([]model.ArticleWithCount, error) {
			return []model.ArticleWithCount{}, nil
		},
	}

	svc := NewService(repo, topicRepo)
	articles, err := svc.List(context.Background(), "", "", "paper")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("articles count = %d, want 0", len(articles))
	}
}

// --- Get テスト ---

// TestArticleService_Get_Success は存在する記事がコメント数付きで返ることをテストする。
func TestArticleService_Get_Success(t *testing.T) {
	repo := &mockArticleRepo{
		findByIDFn: func(ctx context.Context, id int) (*model.ArticleWithCount, error) {
			if id != 1 {
				t.Errorf("id = %d, want 1", id)
			}
			a := testArticle(1)
			return &a, nil
		},
	}

	svc := NewService(repo, &mockTopicRepo{})
	a, err := svc.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if a.ArticleID != 1 {
		t.Errorf("ArticleID = %d, want 1", a.ArticleID)
	}
	if a.CommentCount != 11 {
		t.Errorf("CommentCount = %d, want 11", a.CommentCount)
	}
}

// TestArticleService_Get_NonNumericID は数値でないIDがデータベースに
// 到達する前に拒否されることをテストする。
func TestArticleService_Get_NonNumericID(t *testing.T) {
	repo := &mockArticleRepo{
		findByIDFn: func(ctx context.Context, id int) (*model.ArticleWithCount, error) {
			t.Error("repository should not be reached for non-numeric id")
			return nil, nil
		},
	}

	svc := NewService(repo, &mockTopicRepo{})
	_, err := svc.Get(context.Background(), "not-an-id")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Msg != "bad request" {
		t.Errorf("msg = %q, want %q", apiErr.Msg, "bad request")
	}
}

// TestArticleService_Get_NotFound は存在しないIDで404相当のエラーになることをテストする。
func TestArticleService_Get_NotFound(t *testing.T) {
	svc := NewService(&mockArticleRepo{}, &mockTopicRepo{})
	_, err := svc.Get(context.Background(), "9999")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Msg != "No article found" {
		t.Errorf("msg = %q, want %q", apiErr.Msg, "No article found")
	}
}

// --- UpdateVotes テスト ---

// TestArticleService_UpdateVotes_Success はvotesの加算結果が返ることをテストする。
func TestArticleService_UpdateVotes_Success(t *testing.T) {
	repo := &mockArticleRepo{
		incrementVotesFn: func(ctx context.Context, id, delta int) (*model.Article, error) {
			if id != 1 {
				t.Errorf("id = %d, want 1", id)
			}
			if delta != 5 {
				t.Errorf("delta = %d, want 5", delta)
			}
			a := testArticle(1).Article
			a.Votes += delta
			return &a, nil
		},
	}

	svc := NewService(repo, &mockTopicRepo{})
	a, err := svc.UpdateVotes(context.Background(), "1", json.RawMessage("5"))
	if err != nil {
		t.Fatalf("UpdateVotes returned error: %v", err)
	}
	if a.Votes != 105 {
		t.Errorf("Votes = %d, want 105", a.Votes)
	}
}

// TestArticleService_UpdateVotes_NegativeDelta は負の増分で減算されることをテストする。
func TestArticleService_UpdateVotes_NegativeDelta(t *testing.T) {
	repo := &mockArticleRepo{
		incrementVotesFn: func(ctx context.Context, id, delta int) (*model.Article, error) {
			if delta != -100 {
				t.Errorf("delta = %d, want -100", delta)
			}
			a := testArticle(1).Article
			a.Votes += delta
			return &a, nil
		},
	}

	svc := NewService(repo, &mockTopicRepo{})
	a, err := svc.UpdateVotes(context.Background(), "1", json.RawMessage("-100"))
	if err != nil {
		t.Fatalf("UpdateVotes returned error: %v", err)
	}
	if a.Votes != 0 {
		t.Errorf("Votes = %d, want 0", a.Votes)
	}
}

// TestArticleService_UpdateVotes_NonNumericID は数値でないIDが専用メッセージで
// 拒否されることをテストする。
func TestArticleService_UpdateVotes_NonNumericID(t *testing.T) {
	svc := NewService(&mockArticleRepo{}, &mockTopicRepo{})
	_, err := svc.UpdateVotes(context.Background(), "not-an-id", json.RawMessage("1"))

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Msg != "invalid article ID" {
		t.Errorf("msg = %q, want %q", apiErr.Msg, "invalid article ID")
	}
}

// TestArticleService_UpdateVotes_MissingIncVotes はinc_votes欠落が
// 拒否されることをテストする。
func TestArticleService_UpdateVotes_MissingIncVotes(t *testing.T) {
	svc := NewService(&mockArticleRepo{}, &mockTopicRepo{})
	_, err := svc.UpdateVotes(context.Background(), "1", nil)

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Msg != "missing required fields" {
		t.Errorf("msg = %q, want %q", apiErr.Msg, "missing required fields")
	}
}

// TestArticleService_UpdateVotes_WrongType はinc_votesが数値以外の場合に
// 拒否されることをテストする。
func TestArticleService_UpdateVotes_WrongType(t *testing.T) {
	repo := &mockArticleRepo{
		incrementVotesFn: func(ctx context.Context, id, delta int) (*model.Article, error) {
			t.Error("repository should not be reached for non-numeric inc_votes")
			return nil, nil
		},
	}

	svc := NewService(repo, &mockTopicRepo{})
	_, err := svc.UpdateVotes(context.Background(), "1", json.RawMessage(`"cat"`))

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Msg != "input property is incorrect type" {
		t.Errorf("msg = %q, want %q", apiErr.Msg, "input property is incorrect type")
	}
}

// TestArticleService_UpdateVotes_NotFound は存在しない記事への加算が
// 404相当のエラーになることをテストする。
func TestArticleService_UpdateVotes_NotFound(t *testing.T) {
	svc := NewService(&mockArticleRepo{}, &mockTopicRepo{})
	_, err := svc.UpdateVotes(context.Background(), "9999", json.RawMessage("1"))

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Msg != "No article found" {
		t.Errorf("msg = %q, want %q", apiErr.Msg, "No article found")
	}
}
