// Package topic はトピック参照のドメインロジックを提供する。
package topic

import (
	"context"

	"github.com/hitoshi/newsboard/internal/model"
	"github.com/hitoshi/newsboard/internal/repository"
)

// Service はトピック参照のサービス層。
// トピックはシード後は不変で、一覧取得のみを提供する。
type Service struct {
	topicRepo repository.TopicRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(topicRepo repository.TopicRepository) *Service {
	return &Service{topicRepo: topicRepo}
}

// List は全トピックを返す。
func (s *Service) List(ctx context.Context) ([]model.Topic, error) {
	return s.topicRepo.List(ctx)
}
