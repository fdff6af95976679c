package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"fundmate/appcore/internal/config"
	"fundmate/appcore/internal/remote"
	"fundmate/appcore/internal/service/approval"
	"fundmate/appcore/internal/service/registry"
	"fundmate/appcore/internal/service/relay"
	"fundmate/appcore/internal/session"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancel()

	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("failed to initialize config", slog.Any("error", err))
		os.Exit(1)
	}

	var logLevel slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case slog.LevelDebug.String():
		logLevel = slog.LevelDebug
	case slog.LevelWarn.String():
		logLevel = slog.LevelWarn
	case slog.LevelError.String():
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if cfg.LogLevel == "debug" {
		slog.Debug("running with config")
		fmt.Println(cfg.String())
	}

	slog.Info("starting app")

	sess := session.New()
	sess.OnInvalidate(func() {
		slog.Error("session torn down, re-authentication required")
		cancel()
	})
	if err := sess.Init(cfg.APIToken); err != nil {
		slog.Error("failed to initialize session", slog.Any("error", err))
		os.Exit(1)
	}

	client := remote.NewClient(cfg.APIAddress, sess)
	arena := registry.NewArena(client)
	center := relay.NewCenter()

	if err := mountJointGoals(ctx, client, arena); err != nil {
		slog.Error("failed to mount goals", slog.Any("error", err))
		os.Exit(1)
	}

	subscriber, err := relay.NewAMQPSubscriber(
		cfg.AMQPURL,
		cfg.NotifyExchange,
		cfg.NotifyQueue,
		cfg.NotifyRoutingKey,
	)
	if err != nil {
		slog.Error("failed to connect to broker", slog.Any("error", err))
		os.Exit(1)
	}
	defer subscriber.Close()

	pushRelay := relay.NewRelay(subscriber, arena, center)

	wg := &sync.WaitGroup{}
	var exitCode int32

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting notification relay")
		if err := pushRelay.Run(ctx); err != nil {
			slog.Error("relay failed", slog.Any("error", err))
			atomic.StoreInt32(&exitCode, 1)
			cancel()
			return
		}
		slog.Info("relay shut down gracefully")
	}()

	wg.Wait()

	ec := int(atomic.LoadInt32(&exitCode))
	if ec != 0 {
		slog.Error("app failed", slog.Int("exit_code", ec))
		os.Exit(ec)
	}

	slog.Info("app shut down successfully")
}

// mountJointGoals opens a registry for every shared goal so push events
// can refresh them, and logs the outstanding approval work.
func mountJointGoals(
	ctx context.Context,
	client *remote.Client,
	arena *registry.Arena,
) error {
	goals, err := client.Goals(ctx)
	if err != nil {
		return err
	}

	for _, g := range goals {
		if len(g.Members) < 2 {
			continue
		}

		reg := arena.Mount(g.ID)
		if err := reg.Load(ctx); err != nil {
			return err
		}

		for _, req := range reg.Requests() {
			if req.Status.Terminal() {
				continue
			}
			slog.Info("pending withdrawal request",
				slog.String("goal_id", g.ID),
				slog.String("request_id", req.ID),
				slog.String("requester", req.RequesterName),
				slog.String("amount", req.Amount.String()),
				slog.Int("waiting_on", approval.PendingVoterCount(&req)),
			)
		}
	}

	slog.Info("goals mounted", slog.Int("count", len(goals)))
	return nil
}
