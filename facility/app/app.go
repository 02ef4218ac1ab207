package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aiu-lab/facility-service/facility/config"
	"github.com/aiu-lab/facility-service/facility/internal/handler"
	"github.com/aiu-lab/facility-service/facility/internal/repository"
	"github.com/aiu-lab/facility-service/facility/internal/repository/memory"
	"github.com/aiu-lab/facility-service/facility/internal/service"
	"github.com/aiu-lab/facility-service/facility/internal/sweeper"
	"github.com/aiu-lab/facility-service/facility/migrations"
	"github.com/aiu-lab/facility-service/pkg/auth"
	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/aiu-lab/facility-service/pkg/logger"
	"github.com/aiu-lab/facility-service/pkg/postgres"
	"github.com/aiu-lab/facility-service/pkg/server"
	"go.uber.org/zap"
)

// Deps is the wired service with everything that must be closed on exit.
type Deps struct {
	Service *service.Service
	closers []func()
}

func (d *Deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// Build wires storage, the event publisher and the service from cfg.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Deps, error) {
	deps := &Deps{}
	if cfg.JWTSecret != "" {
		auth.JWTKey = []byte(cfg.JWTSecret)
	}

	var repo repository.Repository
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory storage; state is lost on restart")
		repo = memory.New()
	case config.DriverPostgres, "":
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return nil, fmt.Errorf("db init %w", err)
		}
		deps.closers = append(deps.closers, func() { _ = db.Close() })
		pgRepo, err := repository.NewRepository(db, log)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("repo %w", err)
		}
		repo = pgRepo
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}

	pub := kafka.NewNopPublisher()
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("kafka.NewProducer %w", err)
		}
		deps.closers = append(deps.closers, func() {
			if err := producer.Close(); err != nil {
				log.Warn("producer.Close", zap.Error(err))
			}
		})
		pub = kafka.NewPublisher(producer, cfg.Kafka.EventsTopic, log)
	}

	deps.Service = service.NewService(repo, pub, log,
		service.WithLocation(cfg.Location()),
		service.WithPolicy(service.Policy{
			InstantCheckout: cfg.Rental.InstantCheckout,
			DefaultDuration: cfg.Rental.DefaultDuration,
		}),
	)
	return deps, nil
}

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "facility")
	deps, err := Build(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	var sw *sweeper.Sweeper
	if cfg.SweepSchedule != "" {
		if sw, err = sweeper.New(cfg.SweepSchedule, cfg.Location(), deps.Service.Sweep, log); err != nil {
			return err
		}
		sw.Start()
	}

	h := handler.New(deps.Service, log)
	srv := server.NewServer(cfg.Server.Config(), h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if sw != nil {
		if err = sw.Stop(closeCtx); err != nil {
			log.Warn("sweeper.Stop", zap.Error(err))
		}
	}
	log.Info("Graceful shutdown finished")
	return nil
}
