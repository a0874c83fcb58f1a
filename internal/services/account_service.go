package services

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

// AccountServiceInterface is a deliberately small auth surface: the planner
// only needs a token to gate the AI endpoints. Accounts live in memory.
type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accounts mem.AccountStore
}

func NewAccountService(accounts mem.AccountStore) AccountServiceInterface {
	return &AccountService{
		accounts: accounts,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account := a.accounts.FindByEmail(request.Email)
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	return &response_models.AccountLoginResponse{AccessToken: token}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	account := mem.Account{
		ID:           uuid.New().String(),
		DisplayName:  request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if !a.accounts.Save(account) {
		return nil, utils.ErrEmailAlreadyExists
	}

	return &response_models.AccountResponse{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		Email:       account.Email,
	}, nil
}
