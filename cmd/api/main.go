package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/dailydare/internal/api"
	"github.com/limbo/dailydare/internal/repository"
	"github.com/limbo/dailydare/internal/scheduler"
	"github.com/limbo/dailydare/internal/service"
	"github.com/limbo/dailydare/pkg/cleanup"
	"github.com/limbo/dailydare/pkg/config"
	jwtservice "github.com/limbo/dailydare/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.LogLevel)

	pool := repository.NewPgPool(&repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.Username,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
	})
	usersRepo := repository.NewUsersRepoWithConn(pool)
	profilesRepo := repository.NewProfilesRepoWithConn(pool)
	postsRepo := repository.NewPostsRepoWithConn(pool)
	var (
		daresRepo repository.DaresRepositoryI = repository.NewDaresRepoWithConn(pool)
		cache     scheduler.Invalidator
	)
	if cfg.Redis.Address != "" {
		cached := repository.NewCachedDaresRepo(daresRepo, repository.NewRedisClient(repository.RedisCfg{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.Redis.TTL)
		daresRepo, cache = cached, cached
	} else {
		slog.Info("redis address not set, catalog cache disabled")
	}

	loc := cfg.Location()
	economyService := service.NewEconomyService(profilesRepo, daresRepo, service.WithDefaultLocation(loc))
	catalogService := service.NewCatalogService(daresRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := catalogService.Reconcile(ctx); err != nil {
		cancel()
		cleanup.CleanUp()
		log.Fatal("seeding catalog error: " + err.Error())
	}
	cancel()

	hour, minute := cfg.DailyJobTime()
	sched, err := scheduler.New(loc, hour, minute, scheduler.NewDailyJob(catalogService, cache))
	if err != nil {
		cleanup.CleanUp()
		log.Fatal(err)
	}
	sched.Start()

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo, profilesRepo),
		EconomyService:     economyService,
		CatalogService:     catalogService,
		BonusService:       service.NewBonusService(economyService),
		SocialService:      service.NewSocialService(postsRepo, profilesRepo, usersRepo, service.RealClock{}, loc),
		LeaderboardService: service.NewLeaderboardService(profilesRepo),
		JwtService:         jwtservice.New(cfg.JWTSecret),
	})

	stopped := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cleanup.CleanUp()
		close(stopped)
	}()

	err = serv.Run(cfg.APIAddress)
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
		cleanup.CleanUp()
		os.Exit(1)
	}
	<-stopped
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
