package handler

import (
	"context"

	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/aiu-lab/facility-service/stats/internal/model"
	"github.com/aiu-lab/facility-service/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context, username string) (model.StatsInfo, error)
	Record(ctx context.Context, ev kafka.Event) error
}

var _ StatsService = (*service.Service)(nil)
