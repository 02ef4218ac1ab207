package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/aiu-lab/facility-service/stats/internal/model"
)

type Repository interface {
	GetStats(ctx context.Context, username string) (model.StatsInfo, error)
	// AddEvent stores ev once; redelivered events are ignored.
	AddEvent(ctx context.Context, ev kafka.Event) (bool, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

func (r *repository) AddEvent(ctx context.Context, ev kafka.Event) (bool, error) {
	const q = `insert into events (id, timestamp, entity, entity_id, action, actor, from_status, to_status, username, quantity)
	values (@id, @timestamp, @entity, @entity_id, @action, @actor, @from_status, @to_status, @username, @quantity)
	on conflict (id) do nothing`
	args := pgx.NamedArgs{
		"id":          ev.ID,
		"timestamp":   ev.Timestamp,
		"entity":      string(ev.Entity),
		"entity_id":   ev.EntityID,
		"action":      ev.Action,
		"actor":       ev.Actor,
		"from_status": ev.From,
		"to_status":   ev.To,
		"username":    ev.UserName,
		"quantity":    ev.Quantity,
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return false, fmt.Errorf("insert event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *repository) GetStats(ctx context.Context, username string) (model.StatsInfo, error) {
	const q = `
	select username, max(timestamp) as last_updated,
	       count(*) filter (where entity = 'rental' and action = 'create') as rentals,
	       count(*) filter (where entity = 'rental' and action = 'return') as returns,
	       count(*) filter (where entity = 'rental' and action = 'overdue') as overdue,
	       count(*) filter (where entity = 'rental' and action = 'damage') as damaged,
	       count(*) filter (where entity = 'booking' and action = 'create') as bookings,
	       count(*) filter (where action = 'cancel' and entity <> 'request_item') as cancellations
	from events
	where @username = '' or username = @username
	group by username
	order by username
`
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"username": username})
	if err != nil {
		return model.StatsInfo{}, err
	}
	defer rows.Close()
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Stats])
	if err != nil {
		return model.StatsInfo{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return model.StatsInfo{Data: stats}, nil
}
