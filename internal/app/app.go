package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ezpay/ezpay/internal/config"
	"github.com/ezpay/ezpay/internal/handlers"
	"github.com/ezpay/ezpay/internal/metrics"
	"github.com/ezpay/ezpay/internal/pg"
	"github.com/ezpay/ezpay/internal/repo"
	"github.com/ezpay/ezpay/internal/service"
	"github.com/ezpay/ezpay/internal/transport"
	"github.com/ezpay/ezpay/pkg/logger"
)

const workerPoolSize = 10

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	producer *transport.Producer
	consumer *transport.Consumer
	pool     transport.WorkerPoolI

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	metrics.Init()

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	producer, err := transport.NewProducer(cfg.AmqpURL)
	if err != nil {
		zap.L().Error("AMQP producer failed: ", zap.Error(err))
		return fmt.Errorf("can't connect AMQP producer: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.producer = producer
	a.pool = transport.NewWorkerPool(workerPoolSize)
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, producer, a.pool)
	a.api = handlers.New(a.srv)

	consumer, err := transport.NewConsumer(cfg.AmqpURL, a.srv.TransferService, a.srv.FailLogService, a.pool)
	if err != nil {
		zap.L().Error("AMQP consumer failed: ", zap.Error(err))
		return fmt.Errorf("can't connect AMQP consumer: %w", err)
	}
	a.consumer = consumer
	if err := a.consumer.Start(ctx); err != nil {
		zap.L().Error("consumer start failed: ", zap.Error(err))
		return fmt.Errorf("can't start consumer: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)

		a.consumer.Close()
		a.producer.Close()
		a.pool.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
