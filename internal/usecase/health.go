package usecase

import (
	"context"
	"time"

	"github.com/Harsh-gitaccount/orivanta-website/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) domain.HealthStatus
}

type healthUsecase struct {
	service string
	version string
}

func NewHealthUsecase(service, version string) HealthUsecase {
	return &healthUsecase{service: service, version: version}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   u.service,
		Version:   u.version,
	}
}
