package service_test

import (
	"testing"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/Daikoman-palanarame2/Pokedex/internal/service"
	"github.com/Daikoman-palanarame2/Pokedex/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	authService := service.NewAuthService(nil, testutil.TestConfig())
	userID := uuid.New()

	token, err := authService.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestToken_ExpiredRejected(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.JWTExpirationHours = -1
	authService := service.NewAuthService(nil, cfg)

	token, err := authService.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestToken_WrongSecretRejected(t *testing.T) {
	issuer := service.NewAuthService(nil, testutil.TestConfig())

	otherCfg := testutil.TestConfig()
	otherCfg.JWTSecret = "a-different-secret"
	verifier := service.NewAuthService(nil, otherCfg)

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestToken_GarbageRejected(t *testing.T) {
	authService := service.NewAuthService(nil, testutil.TestConfig())

	for _, token := range []string{"", "notajwt", "a.b.c"} {
		_, err := authService.ValidateToken(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "token %q", token)
	}
}
