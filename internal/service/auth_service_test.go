package service_test

import (
	"context"
	"testing"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/Daikoman-palanarame2/Pokedex/internal/repository/postgres"
	"github.com/Daikoman-palanarame2/Pokedex/internal/service"
	"github.com/Daikoman-palanarame2/Pokedex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.RegisterInput
		setup     func()
		wantErr   error
		checkUser bool
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Username: "newuser",
				Email:    "new@example.com",
				Password: "password123",
			},
			checkUser: true,
		},
		{
			name: "duplicate email with different username",
			input: service.RegisterInput{
				Username: "someoneelse",
				Email:    "taken@example.com",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("original").
					WithEmail("taken@example.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailTaken,
		},
		{
			name: "duplicate username with different email",
			input: service.RegisterInput{
				Username: "original",
				Email:    "other@example.com",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("original").
					WithEmail("taken@example.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkUser {
				assert.Equal(t, tt.input.Username, result.User.Username)
				assert.Equal(t, tt.input.Email, result.User.Email)
				assert.NotEmpty(t, result.Token)

				// The issued token resolves back to the new user.
				userID, err := authService.ValidateToken(result.Token)
				require.NoError(t, err)
				assert.Equal(t, result.User.ID, userID)

				// The raw password is never stored.
				assert.NotContains(t, result.User.PasswordHash, tt.input.Password)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    user.Email,
				Password: "wrongpassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "unknown email yields the same error",
			input: service.LoginInput{
				Email:    "nobody@example.com",
				Password: "anypassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)

			userID, err := authService.ValidateToken(result.Token)
			require.NoError(t, err)
			assert.Equal(t, user.ID, userID)
		})
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	registered, err := authService.Register(ctx, service.RegisterInput{
		Username: "roundtrip",
		Email:    "roundtrip@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	loggedIn, err := authService.Login(ctx, service.LoginInput{
		Email:    "roundtrip@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}
