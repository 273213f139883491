package service

import (
	"Inkwell/pkg/errs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Register(f.ctx, " writer ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "writer", user.Username)
	assert.NotEqual(t, "secret1", user.Password)

	_, err = f.users.Register(f.ctx, "writer", "another")
	assert.ErrorIs(t, err, errs.ErrConflict)

	logged, err := f.users.Login(f.ctx, "writer", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = f.users.Login(f.ctx, "writer", "wrong")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = f.users.Login(f.ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestUserService_BatchGetNames(t *testing.T) {
	f := newFixture(t)
	a, err := f.users.Register(f.ctx, "a", "secret1")
	require.NoError(t, err)
	b, err := f.users.Register(f.ctx, "b", "secret1")
	require.NoError(t, err)

	names, err := f.users.BatchGetNames(f.ctx, []uint64{a.ID, b.ID, 9999})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{a.ID: "a", b.ID: "b"}, names)

	_, err = f.users.GetUser(f.ctx, 9999)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
