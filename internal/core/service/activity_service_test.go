package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adopet/account-service/internal/core/domain"
	"github.com/adopet/account-service/internal/core/ports"
)

type stubActivityRepo struct {
	inserted []*domain.Activity
	err      error
}

func (r *stubActivityRepo) Insert(_ context.Context, activity *domain.Activity) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, activity)
	return nil
}

func TestActivityService_Record(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	ts := time.Now().UTC()
	err := svc.Record(context.Background(), ports.ActivityInput{
		UserID:    "user-1",
		Kind:      domain.ActivityLogin,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.inserted))
	}
	got := repo.inserted[0]
	if got.UserID != "user-1" || got.Kind != domain.ActivityLogin || !got.Timestamp.Equal(ts) {
		t.Fatalf("unexpected activity: %+v", got)
	}
}

func TestActivityService_Record_RepoError(t *testing.T) {
	repo := &stubActivityRepo{err: errors.New("boom")}
	svc := NewActivityService(repo, zerolog.Nop())

	err := svc.Record(context.Background(), ports.ActivityInput{UserID: "user-1", Kind: domain.ActivitySignup})
	if err == nil || !errors.Is(err, repo.err) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
