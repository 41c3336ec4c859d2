package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
	nextID   uint
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	f.nextID++
	account.ID = f.nextID
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id uint) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.accounts[email], nil
}

func registeredService(t *testing.T) (AccountServiceInterface, *fakeAccountRepo) {
	t.Helper()
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada",
		Email:       "ada@example.com",
		Password:    "correct-horse",
	})
	require.NoError(t, err)
	return svc, repo
}

func TestCreateAccountHashesPassword(t *testing.T) {
	_, repo := registeredService(t)

	account := repo.accounts["ada@example.com"]
	require.NotNil(t, account)
	assert.Equal(t, "user", account.Role)
	assert.NotEqual(t, "correct-horse", account.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "correct-horse"))
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	svc, _ := registeredService(t)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Imposter",
		Email:       "ada@example.com",
		Password:    "another-pass",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := registeredService(t)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := registeredService(t)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := registeredService(t)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestGetMe(t *testing.T) {
	svc, repo := registeredService(t)
	id := repo.accounts["ada@example.com"].ID

	me, err := svc.GetMe(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", me.Name)
	assert.Equal(t, "ada@example.com", me.Email)

	_, err = svc.GetMe(context.Background(), id+100)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
