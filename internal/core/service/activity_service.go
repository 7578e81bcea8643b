package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adopet/account-service/internal/core/domain"
	"github.com/adopet/account-service/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists audit
// entries through the given repository.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists a single audit trail entry.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	activity := &domain.Activity{
		UserID:    in.UserID,
		Kind:      in.Kind,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("user_id", in.UserID).
		Str("kind", string(in.Kind)).
		Msg("activity recorded")

	return nil
}
