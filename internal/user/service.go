// Package user はユーザー参照のドメインロジックを提供する。
package user

import (
	"context"

	"github.com/hitoshi/newsboard/internal/model"
	"github.com/hitoshi/newsboard/internal/repository"
)

// Service はユーザー参照のサービス層。
// 本APIにユーザーの作成・更新の経路はない。
type Service struct {
	userRepo repository.UserRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(userRepo repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// List は全ユーザーを返す。
func (s *Service) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Get は指定usernameのユーザーを返す。存在しない場合は404として失敗する。
func (s *Service) Get(ctx context.Context, username string) (*model.User, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, model.NewUserNotFoundError()
	}

	return u, nil
}
