package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *db_models.User
}

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*LoginResult, error)
	Logout(tokenID string, expiresAt time.Time)
	Me(ctx context.Context, caller utils.Identity) (*db_models.User, error)

	ListUsers(ctx context.Context, caller utils.Identity, page, pageSize int) ([]db_models.User, int64, error)
	ChangeRole(ctx context.Context, caller utils.Identity, userID string, role string) (*db_models.User, error)
	DeleteUser(ctx context.Context, caller utils.Identity, userID string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	revoked     memcache.RevokedTokenStore
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	revoked memcache.RevokedTokenStore,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		log:         log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error) {
	email := normalizeEmail(request.Email)
	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, dbError("find account", err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
	}
	if err := a.accountRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, dbError("insert account", err)
	}
	a.log.Info("account registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*LoginResult, error) {
	user, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, dbError("find account", err)
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: time.Now().Add(a.tokens.TTL()),
		User:      user,
	}, nil
}

func (a *AccountService) Logout(tokenID string, expiresAt time.Time) {
	a.revoked.Revoke(tokenID, expiresAt)
}

func (a *AccountService) Me(ctx context.Context, caller utils.Identity) (*db_models.User, error) {
	user, err := a.accountRepo.FindById(ctx, caller.UserID)
	if err != nil {
		return nil, dbError("find account", err)
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	return user, nil
}

func (a *AccountService) ListUsers(ctx context.Context, caller utils.Identity, page, pageSize int) ([]db_models.User, int64, error) {
	if !caller.HasRole(string(db_models.RoleAdmin)) {
		return nil, 0, utils.ErrForbidden
	}
	if page < 1 {
		return nil, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, 0, utils.ErrInvalidPageSize
	}
	users, total, err := a.accountRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, dbError("list accounts", err)
	}
	return users, total, nil
}

func (a *AccountService) ChangeRole(ctx context.Context, caller utils.Identity, userID string, role string) (*db_models.User, error) {
	if !caller.HasRole(string(db_models.RoleAdmin)) {
		return nil, utils.ErrForbidden
	}
	r := db_models.Role(strings.ToUpper(strings.TrimSpace(role)))
	if !r.Valid() {
		return nil, utils.ErrInvalidRole
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}
	if id == caller.UserID && r != db_models.RoleAdmin {
		return nil, utils.Validationf("admins cannot demote themselves")
	}
	user, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError("find account", err)
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	if err := a.accountRepo.UpdateRole(ctx, id, r); err != nil {
		return nil, dbError("update role", err)
	}
	user.Role = r
	a.log.Info("role changed",
		zap.String("user_id", id.String()),
		zap.String("role", string(r)),
		zap.String("by", caller.UserID.String()))
	return user, nil
}

func (a *AccountService) DeleteUser(ctx context.Context, caller utils.Identity, userID string) error {
	if !caller.HasRole(string(db_models.RoleAdmin)) {
		return utils.ErrForbidden
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrAccountNotFound
	}
	if id == caller.UserID {
		return utils.Validationf("admins cannot delete their own account")
	}
	user, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return dbError("find account", err)
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}
	if err := a.accountRepo.DeleteCascade(ctx, id); err != nil {
		return dbError("delete account", err)
	}
	a.log.Info("account deleted", zap.String("user_id", id.String()), zap.String("by", caller.UserID.String()))
	return nil
}
