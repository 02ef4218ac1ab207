package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Repository interface {
	// WithTx runs fn in one transaction. Nested calls reuse the outer one.
	WithTx(ctx context.Context, fn func(r Repository) error) error

	CreateEquipment(ctx context.Context, e model.Equipment) (model.Equipment, error)
	UpdateEquipment(ctx context.Context, e model.Equipment) (model.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (model.Equipment, error)
	GetEquipmentByCode(ctx context.Context, code string) (model.Equipment, error)
	// LockEquipment takes the row lock that serializes stock checks.
	LockEquipment(ctx context.Context, id int64) (model.Equipment, error)
	ListEquipment(ctx context.Context, f model.EquipmentFilter) ([]model.Equipment, error)
	SetEquipmentQRCode(ctx context.Context, id int64, png []byte) error

	CreateRental(ctx context.Context, r model.Rental) (model.Rental, error)
	GetRental(ctx context.Context, id int64) (model.Rental, error)
	LockRental(ctx context.Context, id int64) (model.Rental, error)
	ListRentals(ctx context.Context, f model.RentalFilter) ([]model.Rental, error)
	UpdateRental(ctx context.Context, r model.Rental) error
	MarkOverdue(ctx context.Context, now time.Time) ([]model.Promotion, error)

	CreateLab(ctx context.Context, l model.Lab) (model.Lab, error)
	UpdateLab(ctx context.Context, l model.Lab) (model.Lab, error)
	GetLab(ctx context.Context, id int64) (model.Lab, error)
	GetLabByName(ctx context.Context, name string) (model.Lab, error)
	// LockLab takes the row lock that serializes seat claims in that lab.
	LockLab(ctx context.Context, id int64) (model.Lab, error)
	ListLabs(ctx context.Context, activeOnly bool) ([]model.Lab, error)

	CreateBooking(ctx context.Context, b model.LabBooking) (model.LabBooking, error)
	GetBooking(ctx context.Context, id int64) (model.LabBooking, error)
	LockBooking(ctx context.Context, id int64) (model.LabBooking, error)
	ListBookings(ctx context.Context, f model.BookingFilter) ([]model.LabBooking, error)
	UpdateBooking(ctx context.Context, b model.LabBooking) error
	TakenSeats(ctx context.Context, labID int64, date model.Date, timeSlot string) ([]int, error)
	CountSeatClaims(ctx context.Context, key model.SeatKey, statuses []model.BookingStatus, excludeID int64) (int, error)
	CompleteBookings(ctx context.Context, ids []int64, now time.Time) ([]model.Promotion, error)

	CreateRequest(ctx context.Context, req model.EquipmentRequest) (model.EquipmentRequest, error)
	GetRequest(ctx context.Context, id int64) (model.EquipmentRequest, error)
	LockRequest(ctx context.Context, id int64) (model.EquipmentRequest, error)
	ListRequests(ctx context.Context, f model.RequestFilter) ([]model.EquipmentRequest, error)
	UpdateRequestStatus(ctx context.Context, id int64, status model.RequestStatus) error
	LockItem(ctx context.Context, id int64) (model.RequestItem, error)
	UpdateItem(ctx context.Context, it model.RequestItem) error

	AddHistory(ctx context.Context, h model.StatusHistory) error
	ListHistory(ctx context.Context, entity string, entityID int64) ([]model.StatusHistory, error)

	CountRentals(ctx context.Context, status model.RentalStatus) (int, error)
	CountBookings(ctx context.Context, status model.BookingStatus, date *model.Date) (int, error)
	CountOpenRequests(ctx context.Context) (int, error)
	CountDepletedEquipment(ctx context.Context) (int, error)
}

type queryer interface {
	sqlx.ExtContext
}

type repository struct {
	db  *sqlx.DB
	q   queryer
	tx  *sqlx.Tx
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		q:   db,
		log: log.Named("repo"),
	}, nil
}

const (
	equipmentTableName = "equipment"
	rentalTableName    = "rentals"
	requestTableName   = "equipment_requests"
	itemTableName      = "equipment_request_items"
	labTableName       = "labs"
	bookingTableName   = "lab_bookings"
	historyTableName   = "status_history"

	bookingSeatIndex = "lab_bookings_seat_claim_uidx"
	equipmentCodeKey = "equipment_code_key"
	labNameKey       = "labs_name_key"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithTx(ctx context.Context, fn func(r Repository) error) (err error) {
	if r.tx != nil {
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Error("tx.Rollback", zap.Error(rbErr))
			}
			return
		}
		err = errors.Wrap(tx.Commit(), "commit tx")
	}()
	return fn(&repository{db: r.db, q: tx, tx: tx, log: r.log})
}

func (r *repository) get(ctx context.Context, dest any, b sq.Sqlizer) error {
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	if err := sqlx.GetContext(ctx, r.q, dest, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		r.log.Debug("get", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) selectAll(ctx context.Context, dest any, b sq.Sqlizer) error {
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	if err := sqlx.SelectContext(ctx, r.q, dest, q, args...); err != nil {
		r.log.Debug("select", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) exec(ctx context.Context, b sq.Sqlizer) (int64, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.q.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	var n int
	if err := r.get(ctx, &n, b); err != nil {
		return 0, err
	}
	return n, nil
}

func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.UniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
}

func rentalStatuses(ss []model.RentalStatus) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, string(s))
	}
	return out
}

func bookingStatuses(ss []model.BookingStatus) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, string(s))
	}
	return out
}

func (r *repository) selectRaw(ctx context.Context, dest any, q string, args ...any) error {
	return sqlx.SelectContext(ctx, r.q, dest, q, args...)
}
