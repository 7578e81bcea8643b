package ports

import (
	"context"
	"time"

	"github.com/adopet/account-service/internal/core/domain"
)

// ActivityInput is the DTO passed from producers to the ActivityService.
type ActivityInput struct {
	UserID    string
	Kind      domain.ActivityKind
	Timestamp time.Time
}

// ActivityService records account events in the audit trail.
type ActivityService interface {
	Record(ctx context.Context, in ActivityInput) error
}
