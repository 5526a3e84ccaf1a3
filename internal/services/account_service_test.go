package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
	err     error
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *db_models.Account) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	account.ID = uuid.New()
	if f.byEmail == nil {
		f.byEmail = make(map[string]*db_models.Account)
	}
	f.byEmail[account.Email] = account
	return account.ID, nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, account := range f.byEmail {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := &fakeAccountRepo{}
	svc := NewAccountService(repo)

	registered, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email:       "ada@example.com",
		Password:    "s3cret-pass",
		DisplayName: "Ada",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "ada@example.com", registered.Email)

	// The stored hash never equals the plain password.
	assert.NotEqual(t, "s3cret-pass", repo.byEmail["ada@example.com"].PasswordHash)

	login, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, registered.ID, login.Account.ID)
}

func TestRegisterEmailTaken(t *testing.T) {
	repo := &fakeAccountRepo{
		byEmail: map[string]*db_models.Account{
			"ada@example.com": {Email: "ada@example.com"},
		},
	}
	svc := NewAccountService(repo)

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, utils.ErrEmailTaken)
}

func TestLoginWrongCredentials(t *testing.T) {
	repo := &fakeAccountRepo{}
	svc := NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, utils.ErrWrongCredentials)

	_, err = svc.Register(context.Background(), request_models.RegisterRequest{
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, utils.ErrWrongCredentials)
}

func TestAccountRepoErrorsSurfaceAsDatabaseError(t *testing.T) {
	repo := &fakeAccountRepo{err: errors.New("connection refused")}
	svc := NewAccountService(repo)

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
