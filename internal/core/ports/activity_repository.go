package ports

import (
	"context"

	"github.com/adopet/account-service/internal/core/domain"
)

// ActivityRepository persists audit trail entries.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
}
