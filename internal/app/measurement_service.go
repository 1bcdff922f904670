package app

import (
	"context"
	"time"

	"healthchat/internal/domain"

	"github.com/google/uuid"
)

// MeasurementService encapsulates measurement logging use cases.
type MeasurementService struct {
	repo domain.MeasurementRepository
}

// NewMeasurementService creates a MeasurementService backed by the given
// repository.
func NewMeasurementService(repo domain.MeasurementRepository) *MeasurementService {
	return &MeasurementService{repo: repo}
}

// Record assigns a fresh id, stamps the timestamp if absent, and appends the
// measurement to the user's history. Input shape is validated upstream; this
// never rejects a well-formed record.
func (s *MeasurementService) Record(ctx context.Context, userKey string, rec domain.MeasurementRecord) (domain.MeasurementRecord, error) {
	rec.ID = uuid.NewString()
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	if err := s.repo.Append(ctx, userKey, rec); err != nil {
		return domain.MeasurementRecord{}, err
	}
	return rec, nil
}

// ListAll returns the user's full measurement history in insertion order.
func (s *MeasurementService) ListAll(ctx context.Context, userKey string) ([]domain.MeasurementRecord, error) {
	return s.repo.ListAll(ctx, userKey)
}
