package services

import (
	"context"
	"log"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (response_models.AccountResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Register(ctx context.Context, req request_models.RegisterRequest) (response_models.AccountResponse, error) {
	existing, err := a.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Error checking account: %v", err)
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.AccountResponse{}, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrInvalidInput
	}

	account := &db_models.Account{
		Email:        req.Email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		Interests:    req.Interests,
	}
	id, err := a.accountRepo.Create(ctx, account)
	if err != nil {
		log.Printf("Error creating account: %v", err)
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}

	return response_models.AccountResponse{
		ID:          id.String(),
		Email:       account.Email,
		DisplayName: account.DisplayName,
		Interests:   account.Interests,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error) {
	account, err := a.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.LoginResponse{}, utils.ErrWrongCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrWrongCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	return response_models.LoginResponse{
		Token: token,
		Account: response_models.AccountResponse{
			ID:          account.ID.String(),
			Email:       account.Email,
			DisplayName: account.DisplayName,
		},
	}, nil
}
