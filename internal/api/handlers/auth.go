package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Daikoman-palanarame2/Pokedex/internal/api/middleware"
	"github.com/Daikoman-palanarame2/Pokedex/internal/api/respond"
	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/Daikoman-palanarame2/Pokedex/internal/service"
)

type AuthHandler struct {
	authService       *service.AuthService
	collectionService *service.CollectionService
}

func NewAuthHandler(authService *service.AuthService, collectionService *service.CollectionService) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		collectionService: collectionService,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the account payload. It embeds the owned collections and
// never the password hash.
type UserResponse struct {
	ID        string                   `json:"id"`
	Username  string                   `json:"username"`
	Email     string                   `json:"email"`
	Favorites []domain.CollectionEntry `json:"favorites"`
	Team      []domain.CollectionEntry `json:"team"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Username, email, and password are required")
		return
	}
	if len(req.Password) < 6 {
		respond.Error(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if err != domain.ErrEmailTaken && err != domain.ErrUsernameTaken {
			log.Printf("ERROR [auth.Register]: %v", err)
		}
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User: UserResponse{
			ID:        result.User.ID.String(),
			Username:  result.User.Username,
			Email:     result.User.Email,
			Favorites: []domain.CollectionEntry{},
			Team:      []domain.CollectionEntry{},
		},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if err != domain.ErrInvalidCredentials {
			log.Printf("ERROR [auth.Login]: %v", err)
		}
		respondError(w, err)
		return
	}

	user, err := h.buildUserResponse(r, result.User)
	if err != nil {
		log.Printf("ERROR [auth.Login] loading collections: %v", err)
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    user,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [auth.Me]: %v", err)
		respondError(w, err)
		return
	}

	user, err := h.buildUserResponse(r, account)
	if err != nil {
		log.Printf("ERROR [auth.Me] loading collections: %v", err)
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]UserResponse{"user": user})
}

func (h *AuthHandler) buildUserResponse(r *http.Request, user *domain.User) (UserResponse, error) {
	favorites, err := h.collectionService.GetFavorites(r.Context(), user.ID)
	if err != nil {
		return UserResponse{}, err
	}
	team, err := h.collectionService.GetTeam(r.Context(), user.ID)
	if err != nil {
		return UserResponse{}, err
	}

	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Favorites: favorites,
		Team:      team,
	}, nil
}
