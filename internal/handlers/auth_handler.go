package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"gleamgallery/internal/middleware"
	"gleamgallery/internal/models"
	"gleamgallery/internal/services"
	"gleamgallery/internal/validation"
)

type AuthHandler struct {
	userService *services.UserService
	authService *services.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(userService *services.UserService, authService *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		logger:      logger,
	}
}

// credentials reads a username/password pair from either a JSON body or
// submitted form fields.
func credentials(r *http.Request) (string, string, error) {
	if isJSONRequest(r) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", "", err
		}
		return req.Username, req.Password, nil
	}
	return r.FormValue("username"), r.FormValue("password"), nil
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username, password, err := credentials(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if errs := validation.Credentials(username, password); errs.Any() {
		respondWithJSON(w, http.StatusUnprocessableEntity, &models.AuthFormResult{
			Message: "Invalid registration details.",
			Errors:  errs,
		})
		return
	}

	user, err := h.userService.Register(&models.RegisterRequest{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			respondWithJSON(w, http.StatusConflict, &models.AuthFormResult{
				Message: "Username already exists.",
				Errors:  map[string][]string{validation.FormField: {"Username already exists."}},
			})
			return
		}
		h.logger.Error().Err(err).Msg("Registration failed")
		respondWithError(w, http.StatusInternalServerError, "registration_failed", "Failed to register user")
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "token_generation_failed", "Failed to generate token")
		return
	}

	respondWithJSON(w, http.StatusCreated, &models.AuthFormResult{
		Message: "Registration successful! You can now log in.",
		User:    user.AuthUser(),
		Token:   token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password, err := credentials(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if errs := validation.Credentials(username, password); errs.Any() {
		respondWithJSON(w, http.StatusUnprocessableEntity, &models.AuthFormResult{
			Message: "Invalid credentials.",
			Errors:  errs,
		})
		return
	}

	user, err := h.userService.Authenticate(&models.LoginRequest{Username: username, Password: password})
	if err != nil {
		h.logger.Warn().Str("username", username).Msg("Login failed")
		respondWithJSON(w, http.StatusUnauthorized, &models.AuthFormResult{
			Message: "Invalid username or password.",
			Errors:  map[string][]string{validation.FormField: {"Invalid username or password."}},
		})
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "token_generation_failed", "Failed to generate token")
		return
	}

	respondWithJSON(w, http.StatusOK, &models.AuthFormResult{
		Message: "Login successful!",
		User:    user.AuthUser(),
		Token:   token,
	})
}

// Refresh re-issues a token for the already-authenticated subject.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "user_not_found", "User not found")
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "token_generation_failed", "Failed to generate token")
		return
	}

	respondWithJSON(w, http.StatusOK, models.AuthResponse{
		User:  user.AuthUser(),
		Token: token,
	})
}
