package users

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

const testSecret = "test-secret"

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	return NewService(NewRepo(db), testSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "  Dewi@Example.COM ", "correct horse", "Dewi")
	require.NoError(t, err)
	assert.Equal(t, "dewi@example.com", u.Email, "email is normalized")
	assert.Equal(t, RoleCustomer, u.Role)
	assert.NotEmpty(t, u.ID)

	got, token, err := svc.Login(ctx, "dewi@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID, claims["user_id"])
	assert.Equal(t, "dewi@example.com", claims["email"])
	assert.Equal(t, RoleCustomer, claims["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dewi@example.com", "correct horse", "Dewi")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "DEWI@example.com", "other pass", "Other")
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Conflict, ae.Kind)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dewi@example.com", "correct horse", "Dewi")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "dewi@example.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrBadCredentials, "unknown user is indistinguishable from a bad password")
}
