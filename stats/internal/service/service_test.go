package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/aiu-lab/facility-service/stats/internal/model"
	"github.com/aiu-lab/facility-service/stats/internal/service"
)

type fakeRepo struct {
	events map[uuid.UUID]kafka.Event
}

func (r *fakeRepo) AddEvent(_ context.Context, ev kafka.Event) (bool, error) {
	if _, ok := r.events[ev.ID]; ok {
		return false, nil
	}
	r.events[ev.ID] = ev
	return true, nil
}

func (r *fakeRepo) GetStats(_ context.Context, username string) (model.StatsInfo, error) {
	if len(r.events) == 0 {
		return model.StatsInfo{}, nil
	}
	st := model.Stats{UserName: username}
	for _, ev := range r.events {
		if ev.UserName == username && ev.Action == "create" && ev.Entity == kafka.EntityRental {
			st.Rentals++
		}
	}
	return model.StatsInfo{Data: []model.Stats{st}}, nil
}

func TestService_Record(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{events: map[uuid.UUID]kafka.Event{}}
	svc := service.NewService(repo, zap.NewNop())
	ctx := context.Background()

	info, err := svc.GetStats(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, info.Data)
	require.Empty(t, info.Data)

	ev := kafka.NewEvent(kafka.EntityRental, 1, "create", "aigerim", "", "pending", "aigerim")
	require.NoError(t, svc.Record(ctx, ev))
	require.NoError(t, svc.Record(ctx, ev))
	require.Len(t, repo.events, 1)

	info, err = svc.GetStats(ctx, "aigerim")
	require.NoError(t, err)
	require.Equal(t, 1, info.Data[0].Rentals)
}

func TestService_RecordInvalid(t *testing.T) {
	t.Parallel()
	svc := service.NewService(&fakeRepo{events: map[uuid.UUID]kafka.Event{}}, zap.NewNop())
	valid := kafka.NewEvent(kafka.EntityBooking, 4, "cancel", "timur", "pending", "cancelled", "timur")

	tests := []struct {
		name   string
		mutate func(ev *kafka.Event)
	}{
		{name: "no id", mutate: func(ev *kafka.Event) { ev.ID = uuid.Nil }},
		{name: "no owner", mutate: func(ev *kafka.Event) { ev.UserName = "" }},
		{name: "no entity", mutate: func(ev *kafka.Event) { ev.Entity = "" }},
		{name: "no action", mutate: func(ev *kafka.Event) { ev.Action = "" }},
	}
	for _, tt := range tests {
		ev := valid
		tt.mutate(&ev)
		require.ErrorIs(t, svc.Record(context.Background(), ev), service.ErrInvalidEvent, tt.name)
	}
}
