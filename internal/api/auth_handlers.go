package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"syncvault/internal/auth"
	"syncvault/internal/database"
	"syncvault/internal/models"

	"github.com/google/uuid"
)

const sessionTTL = 30 * 24 * time.Hour

type RegisterRequest struct {
	Email    string  `json:"email" example:"dev@example.com"`
	Password string  `json:"password" example:"password123"`
	Name     *string `json:"name,omitempty" example:"Jane Developer"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"dev@example.com"`
	Password string `json:"password" example:"password123"`
}

type AuthResponse struct {
	User    *models.User    `json:"user"`
	Session *models.Session `json:"session"`
}

// @Summary      Register a developer account
// @Description  Creates a user and returns a 30-day bearer session. A partial state (user created, session failed) is possible and not compensated.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest  body      RegisterRequest  true  "Account details"
// @Success      201              {object}  AuthResponse
// @Failure      400              {string}  string "Invalid input"
// @Failure      409              {string}  string "Email already registered"
// @Failure      500              {string}  string "Internal Server Error"
// @Router       /auth/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 8 {
		http.Error(w, "Password must be at least 8 characters", http.StatusBadRequest)
		return
	}

	existing, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	userID, err := auth.NewID()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user, err := s.store.CreateUser(r.Context(), database.CreateUserParams{
		ID:           userID,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
	})
	if err != nil {
		log.Printf("ERROR: Failed to create user: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	session, err := s.createSession(r, user.ID)
	if err != nil {
		log.Printf("ERROR: Failed to create session for user %s: %v", user.ID, err)
		http.Error(w, "Failed to process session", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{User: user, Session: session})
}

// @Summary      Log a developer in
// @Description  Verifies credentials and returns a fresh 30-day bearer session. Sessions are never revoked or rotated.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body      LoginRequest  true  "Credentials"
// @Success      200           {object}  AuthResponse
// @Failure      400           {string}  string "Invalid request body"
// @Failure      401           {string}  string "Invalid credentials"
// @Failure      500           {string}  string "Internal Server Error"
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password required", http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := s.store.UpdateLastLogin(r.Context(), user.ID); err != nil {
		log.Printf("ERROR: Failed to update last login for user %s: %v", user.ID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	session, err := s.createSession(r, user.ID)
	if err != nil {
		log.Printf("ERROR: Failed to create session for user %s: %v", user.ID, err)
		http.Error(w, "Failed to process session", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{User: user, Session: session})
}

func (s *Server) createSession(r *http.Request, userID string) (*models.Session, error) {
	token, err := auth.NewToken()
	if err != nil {
		return nil, err
	}

	return s.store.CreateSession(r.Context(), database.CreateSessionParams{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(sessionTTL).Unix(),
	})
}
