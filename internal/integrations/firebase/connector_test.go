package firebase

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	calls  int
	record *auth.UserRecord
	err    error
}

func (f *fakeUsers) CreateUser(_ context.Context, _ *auth.UserToCreate) (*auth.UserRecord, error) {
	f.calls++
	return f.record, f.err
}

func TestSignIn_UsesCreatedRecordUID(t *testing.T) {
	users := &fakeUsers{record: &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "uid-from-auth"}}}

	uid, err := signIn(context.Background(), users)
	require.NoError(t, err)
	assert.Equal(t, "uid-from-auth", uid)
	assert.Equal(t, 1, users.calls)
}

func TestSignIn_Errors(t *testing.T) {
	_, err := signIn(context.Background(), &fakeUsers{err: errors.New("quota exceeded")})
	assert.ErrorIs(t, err, ErrInit)
	assert.Contains(t, err.Error(), "quota exceeded")

	_, err = signIn(context.Background(), &fakeUsers{record: &auth.UserRecord{UserInfo: &auth.UserInfo{}}})
	assert.ErrorIs(t, err, ErrInit)
}
