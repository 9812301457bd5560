package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/dailydare/internal/metrics"
	"github.com/limbo/dailydare/internal/service"
	"github.com/limbo/dailydare/pkg/cleanup"
	"github.com/limbo/dailydare/pkg/httputil"
)

// Every handler gives services this long
const handlerTimeout = 10 * time.Second

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	economyService     service.EconomyServiceI
	catalogService     service.CatalogServiceI
	bonusService       service.BonusServiceI
	socialService      service.SocialServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	EconomyService     service.EconomyServiceI
	CatalogService     service.CatalogServiceI
	BonusService       service.BonusServiceI
	SocialService      service.SocialServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		economyService:     servicesOptions.EconomyService,
		catalogService:     servicesOptions.CatalogService,
		bonusService:       servicesOptions.BonusService,
		socialService:      servicesOptions.SocialService,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, metrics.Middleware)
	s.mx.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	s.mx.Handle("/metrics", metrics.Handler())
	s.mx.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
	})
	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware, s.TimezoneMiddleware)

		r.Get("/profile", s.GetProfile)
		r.Delete("/profile", s.DeleteAccount)
		r.Put("/profile/interests", s.SetInterests)
		r.Put("/profile/password", s.ChangePassword)
		r.Post("/profile/onboarding", s.CompleteOnboarding)

		r.Get("/dares/catalog", s.GetCatalog)
		r.Post("/dares/daily", s.AssignDailyDares)
		r.Post("/dares/bonus", s.GenerateBonusDare)
		r.Post("/dares/{id}/complete", s.CompleteDare)
		r.Post("/dares/{id}/reroll", s.RerollDare)
		r.Post("/tokens/purchase", s.PurchaseRerollToken)

		r.Get("/leaderboard", s.GetLeaderboard)

		r.Get("/posts", s.GetFeed)
		r.Post("/posts", s.CreatePost)
		r.Post("/posts/{id}/like", s.LikePost)
		r.Post("/posts/{id}/double-dare", s.DoubleDarePost)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks serving on addr until the server is shut down by cleanup
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("server started", slog.String("address", addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
