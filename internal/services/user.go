package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/aaravmahajanofficial/agroconnect/internal/cache"
	"github.com/aaravmahajanofficial/agroconnect/internal/config"
	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/metrics"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	repository "github.com/aaravmahajanofficial/agroconnect/internal/repositories"
	"github.com/aaravmahajanofficial/agroconnect/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context, query models.UserListQuery) ([]*models.User, int, error)
	UpdateUserStatus(ctx context.Context, caller *models.Caller, id uuid.UUID, status models.AccountStatus) (*models.User, error)
	DeleteUser(ctx context.Context, caller *models.Caller, id uuid.UUID) error
	EnsureAdmin(ctx context.Context, admin *config.Admin) error
}

type userService struct {
	repo        repository.UserRepository
	rateLimiter repository.RateLimitRepository
	cache       cache.Cache
	commodities commodityCache
	jwtKey      []byte
	tokenTTL    time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimiter repository.RateLimitRepository, cache cache.Cache, security *config.Security) UserService {
	return &userService{
		repo:        repo,
		rateLimiter: rateLimiter,
		cache:       cache,
		commodities: commodityCache{cache: cache},
		jwtKey:      []byte(security.JWTKey),
		tokenTTL:    time.Duration(security.JWTExpiryHours) * time.Hour,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	if req.Role == models.RoleAdmin || !req.Role.Valid() {
		return nil, appErrors.ValidationError("Invalid role")
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:     utils.SanitizeText(req.Name),
		Email:    normalizeEmail(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Password: string(hashedPassword),
		Role:     req.Role,
		Status:   models.AccountStatusActive,
		Location: models.Location{
			Pincode:  strings.TrimSpace(req.Location.Pincode),
			State:    utils.SanitizeText(req.Location.State),
			District: utils.SanitizeText(req.Location.District),
			Taluka:   utils.SanitizeText(req.Location.Taluka),
			Address:  utils.SanitizeText(req.Location.Address),
		},
		Documents: models.Documents{
			PanCard:                strings.TrimSpace(req.PanCard),
			CancelledCheque:        strings.TrimSpace(req.CancelledCheque),
			AgricultureCertificate: strings.TrimSpace(req.AgricultureCertificate),
			GSTNumber:              strings.TrimSpace(req.GSTNumber),
		},
	}

	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, appErrors.DuplicateEntryError("Email already registered").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	email := normalizeEmail(req.Email)

	// check rate limit
	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, appErrors.UnavailableError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		metrics.RecordLogin("limited")

		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	// Retrieve the user from the DB and compare the passwords
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		metrics.RecordLogin("invalid")

		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	if user.Status != models.AccountStatusActive {
		metrics.RecordLogin("inactive")

		return nil, appErrors.ForbiddenError("Account is not active")
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, email); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to reset login attempts", slog.String("error", err.Error()))
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	// Generate Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	metrics.RecordLogin("success")

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(s.tokenTTL.Seconds()),
		Role:      user.Role,
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, userLookupError(err)
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, query models.UserListQuery) ([]*models.User, int, error) {

	if query.Role != nil && !query.Role.Valid() {
		return nil, 0, appErrors.ValidationError("Invalid role filter")
	}

	page, pageSize := models.NormalizePage(query.Page, query.PageSize)

	users, total, err := s.repo.ListUsers(ctx, query.Role, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch users").WithError(err)
	}

	return users, total, nil
}

func (s *userService) UpdateUserStatus(ctx context.Context, caller *models.Caller, id uuid.UUID, status models.AccountStatus) (*models.User, error) {

	if err := requireActiveAdmin(caller); err != nil {
		return nil, err
	}

	if !status.Valid() {
		return nil, appErrors.ValidationError("Invalid account status")
	}

	if caller.ID == id {
		return nil, appErrors.ValidationError("Administrators cannot change their own status")
	}

	if err := s.repo.UpdateUserStatus(ctx, id, status); err != nil {
		return nil, userLookupError(err)
	}

	s.forgetAccount(ctx, id)

	return s.GetUserByID(ctx, id)
}

// DeleteUser removes the account together with every commodity it owns and
// leaves cache tombstones for those commodities.
func (s *userService) DeleteUser(ctx context.Context, caller *models.Caller, id uuid.UUID) error {

	if err := requireActiveAdmin(caller); err != nil {
		return err
	}

	if caller.ID == id {
		return appErrors.ValidationError("Administrators cannot delete their own account")
	}

	removed, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return userLookupError(err)
	}

	s.forgetAccount(ctx, id)
	s.commodities.bury(ctx, removed...)

	middleware.LoggerFromContext(ctx).Info("Account deleted",
		slog.String("userId", id.String()),
		slog.Int("commodities", len(removed)))

	return nil
}

// EnsureAdmin creates the configured admin account on first start. An
// existing account with the same email is left untouched.
func (s *userService) EnsureAdmin(ctx context.Context, admin *config.Admin) error {

	if admin.Email == "" {
		return nil
	}

	email := normalizeEmail(admin.Email)

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return appErrors.DatabaseError("Failed to look up admin account").WithError(err)
	}

	if admin.Password == "" {
		return appErrors.ValidationError("Admin password is required to seed the admin account")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:     admin.Name,
		Email:    email,
		Phone:    admin.Phone,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
		Status:   models.AccountStatusActive,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil && !errors.Is(err, repository.ErrDuplicateEmail) {
		return appErrors.DatabaseError("Failed to create admin account").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Admin account seeded", slog.String("email", email))

	return nil
}

func (s *userService) forgetAccount(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, cache.Key(cache.AccountKeyPrefix, id)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Account cache invalidation failed",
			slog.String("userId", id.String()),
			slog.String("error", err.Error()))
	}
}

func requireActiveAdmin(caller *models.Caller) error {
	if !caller.IsActive() || !caller.IsAdmin() {
		return appErrors.ForbiddenError("You are not allowed to perform this action")
	}

	return nil
}

func userLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFoundError("User not found").WithError(err)
	}

	return appErrors.DatabaseError("Failed to fetch user").WithError(err)
}
