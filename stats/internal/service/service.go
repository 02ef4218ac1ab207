package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/aiu-lab/facility-service/stats/internal/model"
	statsRepo "github.com/aiu-lab/facility-service/stats/internal/repository"
)

// ErrInvalidEvent marks a message that can never be stored.
var ErrInvalidEvent = errors.New("invalid event")

type Service struct {
	log  *zap.Logger
	repo statsRepo.Repository
}

func NewService(repo statsRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

// GetStats aggregates the event log per user, optionally for one user.
func (s *Service) GetStats(ctx context.Context, username string) (model.StatsInfo, error) {
	info, err := s.repo.GetStats(ctx, username)
	if err != nil {
		return model.StatsInfo{}, err
	}
	if info.Data == nil {
		info.Data = []model.Stats{}
	}
	return info, nil
}

// Record is used by the kafka consumer.
func (s *Service) Record(ctx context.Context, ev kafka.Event) error {
	if ev.ID == uuid.Nil || ev.UserName == "" || ev.Entity == "" || ev.Action == "" {
		return ErrInvalidEvent
	}
	stored, err := s.repo.AddEvent(ctx, ev)
	if err != nil {
		return err
	}
	if !stored {
		s.log.Debug("duplicate event", zap.Stringer("id", ev.ID), zap.String("type", ev.Type()))
	}
	return nil
}
