package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BuzzLog/configs"
	"droscher.com/BuzzLog/pkg/auth"
)

const secret = "sssh"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

// call runs the interceptor and reports what reached the handler.
func call(manager *auth.Manager, authorization string) (context.Context, error) {
	var seen context.Context

	next := func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		seen = ctx

		return connect.NewResponse(&struct{}{}), nil
	}

	request := connect.NewRequest(&struct{}{})
	if len(authorization) > 0 {
		request.Header().Set("Authorization", authorization)
	}

	_, err := manager.GrpcAuthInterceptor()(next)(context.Background(), request)

	return seen, err
}

func TestInterceptor_DisabledWithoutSecret(t *testing.T) {
	manager := auth.NewAuthManager(configs.Auth{}, zap.NewNop())

	ctx, err := call(manager, "")
	require.NoError(t, err)

	requestID, ok := ctx.Value(auth.RequestIDKey{}).(string)
	assert.True(t, ok)
	assert.NoError(t, uuid.Validate(requestID))

	_, ok = auth.Subject(ctx)
	assert.False(t, ok)
}

func TestInterceptor_AcceptsValidToken(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	manager := auth.NewAuthManager(configs.Auth{SecretKey: secret, Audience: "buzzlog"}, zap.New(observedZapCore))

	token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "me", "aud": "buzzlog"})

	ctx, err := call(manager, "Bearer "+token)
	require.NoError(t, err)

	subject, ok := auth.Subject(ctx)
	assert.True(t, ok)
	assert.Equal(t, "me", subject)
	assert.Equal(t, 1, observedLogs.FilterMessage("authenticated request").Len())
}

func TestInterceptor_FallsBackToEmail(t *testing.T) {
	manager := auth.NewAuthManager(configs.Auth{SecretKey: secret}, zap.NewNop())

	token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "me@example.com"})

	ctx, err := call(manager, "bearer "+token)
	require.NoError(t, err)

	subject, _ := auth.Subject(ctx)
	assert.Equal(t, "me@example.com", subject)
}

func TestInterceptor_Rejects(t *testing.T) {
	manager := auth.NewAuthManager(configs.Auth{SecretKey: secret, Audience: "buzzlog"}, zap.NewNop())

	tests := []struct {
		name          string
		authorization string
		expected      error
	}{
		{"missing header", "", auth.ErrMissingToken},
		{"not bearer", "Basic dXNlcjpwYXNz", auth.ErrBadFormat},
		{"wrong key", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "me", "aud": "buzzlog"}), auth.ErrInvalidToken},
		{"wrong audience", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "me", "aud": "other"}), auth.ErrInvalidToken},
		{"expired", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "me", "aud": "buzzlog", "exp": time.Now().Add(-time.Hour).Unix()}), auth.ErrInvalidToken},
		{"no subject", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"aud": "buzzlog"}), auth.ErrInvalidToken},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx, err := call(manager, test.authorization)

			assert.Nil(t, ctx)
			assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
			assert.ErrorIs(t, err, test.expected)
		})
	}
}
