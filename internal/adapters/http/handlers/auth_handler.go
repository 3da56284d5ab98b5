package handlers

import (
	"errors"
	"strings"

	"navkar-inquiry/internal/adapters/persistence/models"
	"navkar-inquiry/internal/adapters/persistence/repositories"
	"navkar-inquiry/internal/config"
	"navkar-inquiry/internal/core/domain"
	"navkar-inquiry/internal/pkg/jwt"
	"navkar-inquiry/internal/pkg/password"
	"navkar-inquiry/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userRepo repositories.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles account creation with a chosen role
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return response.BadRequest(c, "Role must be USER or ADMIN")
	}

	exists, err := h.userRepo.ExistsByUsername(c.Context(), req.Username)
	if err != nil {
		return response.InternalServerError(c, "Failed to register user")
	}
	if exists {
		return response.Conflict(c, "Username already exists")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to register user")
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Role:     string(role),
	}
	if err := h.userRepo.Create(c.Context(), user); err != nil {
		return response.InternalServerError(c, "Failed to register user")
	}

	return response.Created(c, fiber.Map{"message": "User registered successfully"})
}

// Login authenticates a user and returns the bearer token and role
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userRepo.GetByUsername(c.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	if !password.Verify(req.Password, user.Password) {
		return response.Unauthorized(c, "Invalid credentials")
	}

	granted := domain.Role(user.Role).Granted()
	token, err := jwt.GenerateAccessToken(
		user.ID,
		user.Username,
		string(granted),
		h.cfg.Server.JWT.Secret,
		h.cfg.Server.JWT.AccessTokenMins,
	)
	if err != nil {
		return response.InternalServerError(c, "Failed to login")
	}

	return response.JSON(c, fiber.Map{
		"token": token,
		"role":  granted,
	})
}
