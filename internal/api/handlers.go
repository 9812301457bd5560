package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailydare/internal/error_values"
	"github.com/limbo/dailydare/internal/service"
	"github.com/limbo/dailydare/pkg/entity"
	"github.com/limbo/dailydare/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type InterestsRequest struct {
	Interests []string `json:"interests"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type CompleteDareRequest struct {
	Points int  `json:"points"`
	Bonus  bool `json:"bonus"`
}

type BonusDareRequest struct {
	Difficulty string `json:"difficulty"`
}

type CreatePostRequest struct {
	DareID     string           `json:"dareId"`
	ImageURL   string           `json:"imageURL"`
	Tags       []string         `json:"tags"`
	Location   *entity.Location `json:"location,omitempty"`
	Bonus      bool             `json:"bonus"`
	DareTitle  string           `json:"dareTitle"`
	Difficulty string           `json:"difficulty"`
	Points     int              `json:"points"`
}

type DailyDaresResponse struct {
	UserID string                `json:"uid"`
	Dares  []entity.AssignedDare `json:"dares"`
}

type FeedResponse struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Posts []*entity.Post `json:"posts"`
}

type errorMapping struct {
	err     error
	status  int
	message string
}

// Checked in order, first match wins
var serviceErrors = []errorMapping{
	{errorvalues.ErrValidation, http.StatusBadRequest, "invalid request"},
	{errorvalues.ErrInvalidPoints, http.StatusBadRequest, "invalid points"},
	{errorvalues.ErrInvalidDifficulty, http.StatusBadRequest, "unknown difficulty"},
	{errorvalues.ErrSelfDoubleDare, http.StatusBadRequest, "can't double dare own post"},
	{errorvalues.ErrInsufficientCurrency, http.StatusPaymentRequired, "not enough points or tokens"},
	{errorvalues.ErrWrongCredentials, http.StatusForbidden, "invalid username or password"},
	{errorvalues.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{errorvalues.ErrProfileNotFound, http.StatusNotFound, "profile not found"},
	{errorvalues.ErrPostNotFound, http.StatusNotFound, "post not found"},
	{errorvalues.ErrDareNotAssigned, http.StatusNotFound, "dare is not assigned today"},
	{errorvalues.ErrAlreadyCompleted, http.StatusConflict, "dare already completed"},
	{errorvalues.ErrDareNotComplete, http.StatusConflict, "dare is not completed yet"},
	{errorvalues.ErrCatalogExhausted, http.StatusConflict, "no other dares of this difficulty"},
	{errorvalues.ErrUserExists, http.StatusConflict, "user with such name already exists"},
	{errorvalues.ErrTooManyConflicts, http.StatusConflict, "profile is busy, try again"},
}

// writeServiceError maps service sentinels to statuses. Unknown errors are 500
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	for _, m := range serviceErrors {
		if !errors.Is(err, m.err) {
			continue
		}
		logger.Warn(op+" rejected", slog.String("error", err.Error()))
		var details error
		if m.status == http.StatusBadRequest || m.status == http.StatusPaymentRequired {
			details = err
		}
		httputil.WriteErrorResponse(w, m.status, m.message, details)
		return
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registration", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// authorized pulls uid put by AuthMiddleware, answering 401 itself when it's missing
func authorized(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, false
	}
	return uid, true
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, "get profile")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	profile, err := s.economyService.Profile(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) SetInterests(w http.ResponseWriter, r *http.Request) {
	s.updateInterests(w, r, "setting interests", s.userService.SetInterests)
}

func (s *Server) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	s.updateInterests(w, r, "onboarding", s.userService.CompleteOnboarding)
}

func (s *Server) updateInterests(w http.ResponseWriter, r *http.Request, op string,
	apply func(ctx context.Context, id uuid.UUID, req *service.InterestsRequest) (*entity.Profile, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, op)
	if !ok {
		return
	}
	var req InterestsRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error(op + " error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	profile, err := apply(ctx, uid, &service.InterestsRequest{Interests: req.Interests})
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("interests updated")
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, "changing password")
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("changing password error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	err := s.userService.ChangePassword(ctx, uid, &service.ChangePasswordRequest{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		writeServiceError(w, logger, "changing password", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("password changed")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("account deletion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	var (
		dares []entity.Dare
		err   error
	)
	if difficulty := r.URL.Query().Get("difficulty"); difficulty != "" {
		dares, err = s.catalogService.ListByDifficulty(ctx, difficulty)
	} else {
		dares, err = s.catalogService.List(ctx)
	}
	if err != nil {
		writeServiceError(w, logger, "listing catalog", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"dares": dares})
}

func (s *Server) AssignDailyDares(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, "daily dares")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	dares, err := s.economyService.AssignDailyDares(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "assigning daily dares", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DailyDaresResponse{
		UserID: uid.String(),
		Dares:  dares,
	})
	logger.Info("daily dares provided")
}

func (s *Server) CompleteDare(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, "completing dare")
	if !ok {
		return
	}
	dareID := r.PathValue("id")
	var req CompleteDareRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("completing dare error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	res, err := s.economyService.CompleteDare(ctx, uid, dareID, req.Points, req.Bonus)
	if err != nil {
		writeServiceError(w, logger, "completing dare", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("dare completed", slog.String("dare_id", dareID), slog.Int("points", res.PointsAwarded))
}

func (s *Server) RerollDare(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, "reroll")
	if !ok {
		return
	}
	dareID := r.PathValue("id")
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	res, err := s.economyService.RerollDare(ctx, uid, dareID)
	if err != nil {
		writeServiceError(w, logger, "reroll", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("dare rerolled", slog.String("dare_id", dareID), slog.String("payment", string(res.Payment)))
}

func (s *Server) GenerateBonusDare(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req BonusDareRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("bonus dare error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	dare, err := s.bonusService.Generate(ctx, req.Difficulty)
	if err != nil {
		writeServiceError(w, logger, "bonus dare", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, dare)
}

func (s *Server) PurchaseRerollToken(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, "token purchase")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	res, err := s.economyService.PurchaseRerollToken(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "token purchase", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("reroll token purchased")
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	entries, err := s.leaderboardService.Top(ctx, limit, r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, logger, "leaderboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) GetFeed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 20
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	posts, err := s.socialService.Feed(ctx, page, limit)
	if err != nil {
		writeServiceError(w, logger, "feed", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, FeedResponse{
		Page:  page,
		Limit: limit,
		Posts: posts,
	})
}

func (s *Server) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, "create post")
	if !ok {
		return
	}
	var req CreatePostRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("create post error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	post, err := s.socialService.CreatePost(ctx, uid, &service.CreatePostRequest{
		DareID:     req.DareID,
		ImageURL:   req.ImageURL,
		Tags:       req.Tags,
		Location:   req.Location,
		Bonus:      req.Bonus,
		DareTitle:  req.DareTitle,
		Difficulty: req.Difficulty,
		Points:     req.Points,
	})
	if err != nil {
		writeServiceError(w, logger, "create post", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, post)
	logger.Info("post created", slog.String("post_id", post.ID.String()))
}

func postIDFromPath(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) LikePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := postIDFromPath(w, r, "like")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	likes, err := s.socialService.Like(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "like", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"likes": likes})
}

func (s *Server) DoubleDarePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, "double dare")
	if !ok {
		return
	}
	id, ok := postIDFromPath(w, r, "double dare")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	score, err := s.socialService.DoubleDare(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "double dare", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"score": score})
	logger.Info("double dare given", slog.String("post_id", id.String()))
}
