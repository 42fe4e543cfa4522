package server

import (
	"time"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /register?email=&password=
// Parameters are accepted as query parameters, matching the public interface.
func (s *Server) Register(c *fiber.Ctx) error {
	email := c.Query("email")
	password := c.Query("password")

	if email == "" || password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	existing, err := s.userRepo.GetByEmail(c.Context(), email)
	if err != nil {
		return respondServiceError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email already registered"))
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
	}
	// The unique index backs up the existence check above; a concurrent
	// duplicate registration still surfaces as a 400.
	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return respondServiceError(c, createErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
	})
}

// Login handles POST /login with form-encoded username and password.
// The username field carries the email, OAuth2 password-flow style.
func (s *Server) Login(c *fiber.Ctx) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	if email == "" || password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and password are required"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), email)
	if err != nil {
		return respondServiceError(c, err)
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		observability.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid username or password"))
	}

	ttl := time.Duration(s.config.AccessTokenTTLMinutes) * time.Minute
	token, err := s.tokens.Issue(user.Email, ttl)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
