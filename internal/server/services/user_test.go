package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/cryptox"
	"github.com/dmitrijs2005/shopfront/internal/server/auth"
)

func newUserService(t *testing.T, repo *fakeUsersRepo) *UserService {
	t.Helper()
	rm := &fakeRepoManager{usersRepo: repo}
	tokens := auth.NewTokenManager("secretKey", "HS256", time.Hour)
	return NewUserService(nil, rm, tokens)
}

func TestUserService_Register(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := newUserService(t, repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "pw1", user.PasswordHash)

	// same username again, regardless of password
	_, err = svc.Register(ctx, "alice", "anything")
	assert.ErrorIs(t, err, common.ErrUsernameTaken)
}

func TestUserService_Login(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := newUserService(t, repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	// unknown user collapses to the same outcome as a wrong password
	_, err = svc.Login(ctx, "nobody", "pw1")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	token, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user := svc.CurrentUser(ctx, token)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_Login_MalformedHashPropagates(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := newUserService(t, repo)
	ctx := context.Background()

	_, err := svc.RegisterPrehashed(ctx, "bob", "not-a-bcrypt-hash")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "bob", "pw1")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedHash)
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestUserService_RegisterPrehashed(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := newUserService(t, repo)
	ctx := context.Background()

	hash, err := cryptox.HashPassword("pw1")
	require.NoError(t, err)

	_, err = svc.RegisterPrehashed(ctx, "carol", hash)
	require.NoError(t, err)

	token, err := svc.Login(ctx, "carol", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestUserService_CurrentUser_SoftFailures(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := newUserService(t, repo)
	ctx := context.Background()

	// absent token
	assert.Nil(t, svc.CurrentUser(ctx, ""))

	// malformed token
	assert.Nil(t, svc.CurrentUser(ctx, "garbage"))

	// valid token whose subject no longer resolves
	token, err := svc.tokens.Issue("ghost")
	require.NoError(t, err)
	assert.Nil(t, svc.CurrentUser(ctx, token))

	// repository failure also collapses to anonymous
	_, err = svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	token, err = svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	repo.getErr = errors.New("db down")
	assert.Nil(t, svc.CurrentUser(ctx, token))
}
