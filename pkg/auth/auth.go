package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/BuzzLog/configs"
)

const RequestIDHeader = "X-Request-Id"

type (
	SubjectKey   struct{}
	RequestIDKey struct{}
)

var (
	ErrMissingToken = errors.New("authorization header not found")
	ErrBadFormat    = errors.New("authorization format must be Bearer {token}")
	ErrInvalidToken = errors.New("invalid token")
)

// Manager checks bearer tokens on API calls. With no secret key configured every call
// is let through, which is how a single user runs the server on their own machine.
type Manager struct {
	conf   configs.Auth
	logger *zap.Logger
}

func NewAuthManager(conf configs.Auth, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

func (a *Manager) Enabled() bool {
	return len(a.conf.SecretKey) > 0
}

func (a *Manager) GrpcAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			requestID := req.Header().Get(RequestIDHeader)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}

			ctx = context.WithValue(ctx, RequestIDKey{}, requestID)
			logger := a.logger.With(zap.String("requestID", requestID), zap.String("procedure", req.Spec().Procedure))

			if !a.Enabled() {
				logger.Debug("auth disabled")

				return next(ctx, req)
			}

			subject, err := a.authenticate(req.Header())
			if err != nil {
				logger.Error("unauthenticated request", zap.Error(err))

				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			logger.Info("authenticated request", zap.String("subject", subject))

			return next(context.WithValue(ctx, SubjectKey{}, subject), req)
		}
	}
}

func (a *Manager) authenticate(header http.Header) (string, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	accessToken, err := extractTokenFromHeader(header)
	if err != nil {
		return "", err
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return "", ErrInvalidToken
	}

	if len(a.conf.Audience) > 0 && !claims.VerifyAudience(a.conf.Audience, true) {
		return "", fmt.Errorf("%w: wrong audience", ErrInvalidToken)
	}

	subject, found := claims["sub"].(string)
	if !found {
		subject, found = claims["email"].(string)
	}

	if !found {
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}

	return subject, nil
}

func extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return "", ErrMissingToken
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return "", ErrBadFormat
	}

	return token, nil
}

// Subject returns the authenticated subject of the call, if any.
func Subject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey{}).(string)

	return subject, ok
}
