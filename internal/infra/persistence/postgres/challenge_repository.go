package postgres

import (
	"context"

	"huddle/internal/domain/repository"
	"huddle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// challengeRepository reads the challenge table shared with the challenge service.
type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository is the constructor for challengeRepository.
func NewChallengeRepository(db *gorm.DB) repository.ChallengeRepository {
	return &challengeRepository{db: db}
}

func (repo *challengeRepository) FindChallengeTitle(ctx context.Context, id uuid.UUID) (string, error) {
	var challengeM model.ChallengeModel

	if err := repo.db.WithContext(ctx).
		Select("id", "title").
		Where("id = ?", id).
		First(&challengeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrChallengeNotFound
		}

		return "", errors.Wrap(err, "failed to find challenge")
	}

	return challengeM.Title, nil
}
