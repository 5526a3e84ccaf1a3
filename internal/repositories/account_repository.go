package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *db_models.Account) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (*db_models.Account, error)
	GetByID(ctx context.Context, id string) (*db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *db_models.Account) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return uuid.Nil, err
	}
	return account.ID, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
