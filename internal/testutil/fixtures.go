package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("test_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID        string                   `json:"id"`
		Username  string                   `json:"username"`
		Email     string                   `json:"email"`
		Favorites []domain.CollectionEntry `json:"favorites"`
		Team      []domain.CollectionEntry `json:"team"`
	} `json:"user"`
}

// BuildAndAuthenticate creates a user via the API and returns it with a token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"email":    user.Email,
		"password": password,
	})
	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in test user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("login failed with status %d: %s", resp.StatusCode, raw)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}

	return user, authResp.Token
}

// EntryBuilder creates collection entries directly in the database
type EntryBuilder struct {
	userID       uuid.UUID
	list         domain.CollectionList
	pokemonID    int
	pokemonName  string
	pokemonImage string
}

// NewEntryBuilder creates an EntryBuilder for the given user and list
func NewEntryBuilder(userID uuid.UUID, list domain.CollectionList) *EntryBuilder {
	return &EntryBuilder{
		userID:       userID,
		list:         list,
		pokemonID:    25,
		pokemonName:  "pikachu",
		pokemonImage: "https://example.com/pikachu.png",
	}
}

// WithPokemon sets the catalog snapshot fields
func (b *EntryBuilder) WithPokemon(id int, name, image string) *EntryBuilder {
	b.pokemonID = id
	b.pokemonName = name
	b.pokemonImage = image
	return b
}

// Build inserts the entry
func (b *EntryBuilder) Build(t *testing.T, db *gorm.DB) *domain.CollectionEntry {
	t.Helper()

	entry := &domain.CollectionEntry{
		UserID:       b.userID,
		List:         b.list,
		PokemonID:    b.pokemonID,
		PokemonName:  b.pokemonName,
		PokemonImage: b.pokemonImage,
		AddedAt:      time.Now(),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create collection entry: %v", err)
	}
	return entry
}

// CreateAuthenticatedRequest builds a request with an optional bearer token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body []byte, token string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
