// Package article は記事の取得・一覧・投票のドメインロジックを提供する。
package article

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/hitoshi/newsboard/internal/model"
	"github.com/hitoshi/newsboard/internal/repository"
)

// Service は記事管理のサービス層。
// ソートクエリの許可リスト検証と、数値IDの事前検証を担う。
type Service struct {
	articleRepo repository.ArticleRepository
	topicRepo   repository.TopicRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(articleRepo repository.ArticleRepository, topicRepo repository.TopicRepository) *Service {
	return &Service{
		articleRepo: articleRepo,
		topicRepo:   topicRepo,
	}
}

// List は記事一覧をコメント数付きで返す。
// sortByのデフォルトはcreated_at、orderByのデフォルトはdesc。
// sortBy/orderByは許可リストで検証し、検証を通らない値がクエリに
// 到達することはない。topicが空でない場合はtopicsテーブルをライブ参照し、
// 存在しないslugは404として拒否する。存在するが記事が0件のslugは
// 空の一覧を返す（エラーにしない）。
func (s *Service) List(ctx context.Context, sortBy, orderBy, topic string) ([]model.ArticleWithCount, error) {
	if sortBy == "" {
		sortBy = string(model.SortKeyCreatedAt)
	}
	if orderBy == "" {
		orderBy = string(model.SortOrderDesc)
	}

	sortKey := model.SortKey(sortBy)
	if !sortKey.IsValid() {
		return nil, model.NewInvalidSortError()
	}

	order := model.SortOrder(orderBy)
	if !order.IsValid() {
		return nil, model.NewInvalidOrderError()
	}

	if topic != "" {
		t, err := s.topicRepo.FindBySlug(ctx, topic)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, model.NewTopicNotFoundError()
		}
	}

	return s.articleRepo.List(ctx, sortKey, order, topic)
}

// Get は指定IDの記事をコメント数付きで返す。
// IDはデータベースに到達する前に数値形式を検証する。
func (s *Service) Get(ctx context.Context, idStr string) (*model.ArticleWithCount, error) {
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, model.NewBadRequestError()
	}

	a, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.NewArticleNotFoundError()
	}

	return a, nil
}

// UpdateVotes はinc_votesの検証を行い、votesを原子的に加算した記事を返す。
// incVotesはリクエストボディのinc_votesフィールドの生のJSON値。
// フィールド欠落（nil）、数値以外の型はデータベースに到達する前に拒否する。
// 加算は冪等ではない。同じ増分を2回適用すればvotesは2倍分増える。
func (s *Service) UpdateVotes(ctx context.Context, idStr string, incVotes json.RawMessage) (*model.Article, error) {
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, model.NewInvalidArticleIDError()
	}

	if len(incVotes) == 0 {
		return nil, model.NewMissingVotesError()
	}

	var delta int
	if err := json.Unmarshal(incVotes, &delta); err != nil {
		return nil, model.NewInvalidTypeError()
	}

	a, err := s.articleRepo.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.NewArticleNotFoundError()
	}

	return a, nil
}
