package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/aiu-lab/facility-service/pkg/auth"
	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/aiu-lab/facility-service/pkg/logger"
	"github.com/aiu-lab/facility-service/pkg/postgres"
	"github.com/aiu-lab/facility-service/pkg/server"
	"github.com/aiu-lab/facility-service/stats/config"
	"github.com/aiu-lab/facility-service/stats/internal/handler"
	"github.com/aiu-lab/facility-service/stats/internal/repository"
	"github.com/aiu-lab/facility-service/stats/internal/service"
	"github.com/aiu-lab/facility-service/stats/migrations"
)

func migrate(ctx context.Context, cfg *postgres.DB) error {
	goose.SetTableName(migrations.VersionTable)
	db, err := postgres.NewPostgresDB(ctx, cfg, migrations.MigrationFiles)
	if err != nil {
		return err
	}
	return db.Close()
}

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "stats")
	if cfg.JWTSecret != "" {
		auth.JWTKey = []byte(cfg.JWTSecret)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := migrate(ctx, &cfg.Database); err != nil {
		return fmt.Errorf("db migrate %w", err)
	}
	pool, err := postgres.NewPool(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	defer pool.Close()

	repo, err := repository.NewRepository(pool, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}
	svc := service.NewService(repo, log)

	consumed := make(chan struct{})
	if cfg.Kafka.Enabled() {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer %w", err)
		}
		defer func() {
			if err := group.Close(); err != nil {
				log.Warn("group.Close", zap.Error(err))
			}
		}()
		go func() {
			defer close(consumed)
			kafka.Consume(ctx, group, handler.NewConsumer(svc.Record, log), log, cfg.Kafka.EventsTopic)
		}()
	} else {
		log.Warn("KAFKA_ADDRS is empty; no events will be consumed")
		close(consumed)
	}

	h := handler.New(svc, log)
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

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	select {
	case <-consumed:
	case <-closeCtx.Done():
		log.Warn("consumer did not stop in time")
	}
	log.Info("Graceful shutdown finished")
	return nil
}
