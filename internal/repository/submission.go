package repository

import (
	"context"
	"time"

	"github.com/virality-gg/backend/internal/entity"
	"github.com/virality-gg/backend/pkg/xcontext"
)

type SubmissionStatistic struct {
	Status entity.SubmissionStatus
	Count  int64
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	GetByID(ctx context.Context, id string) (*entity.Submission, error)
	Statistic(ctx context.Context, creatorID string, since time.Time) ([]SubmissionStatistic, error)
}

type submissionRepository struct{}

func NewSubmissionRepository() *submissionRepository {
	return &submissionRepository{}
}

func (r *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	return xcontext.DB(ctx).Create(submission).Error
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	var result entity.Submission
	err := xcontext.DB(ctx).Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *submissionRepository) Statistic(
	ctx context.Context, creatorID string, since time.Time,
) ([]SubmissionStatistic, error) {
	query := xcontext.DB(ctx).
		Model(&entity.Submission{}).
		Select("status, COUNT(*) AS count").
		Where("creator_id=?", creatorID)

	// A zero since means all time.
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	var result []SubmissionStatistic
	if err := query.Group("status").Scan(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
