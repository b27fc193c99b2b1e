package usecase_preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/reelcritic/core/internal/model"
)

var ErrInternal = errors.New("internal error")

type Repository interface {
	LoadByUser(ctx context.Context, userID string) ([]*model.PreferenceWithMovie, error)
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{repository: repository}
}

func (u *Usecase) ByUser(ctx context.Context, userID string) ([]*model.PreferenceWithMovie, error) {
	preferences, err := u.repository.LoadByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return preferences, nil
}
