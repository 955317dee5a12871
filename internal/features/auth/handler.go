package auth

import (
	"log"
	"time"

	"github.com/coastwatch/coastwatch-api/internal/config"
	"github.com/coastwatch/coastwatch-api/internal/pkg/authz"
	"github.com/coastwatch/coastwatch-api/internal/pkg/response"
	"github.com/coastwatch/coastwatch-api/internal/pkg/token"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	repo *Repository
	cfg  *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{repo: repo, cfg: cfg}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} response.APIResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.ValidationErrors(c, []string{err.Error()})
		return
	}

	existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Printf("auth: lookup error: %v", err)
		response.StorageError(c, err, "Failed to register")
		return
	}
	if existing != nil {
		response.Conflict(c, "Email already registered")
		return
	}

	// Hash explicitly here, not in a save hook.
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     NormalizeEmail(req.Email),
		Password:  string(hashed),
		Role:      authz.RoleCitizen,
		Status:    StatusActive,
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		log.Printf("auth: create error: %v", err)
		response.StorageError(c, err, "Failed to register")
		return
	}

	tok, err := h.issueToken(user)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	response.Created(c, AuthResponse{Token: tok, User: user})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.APIResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Printf("auth: lookup error: %v", err)
		response.StorageError(c, err, "Failed to log in")
		return
	}
	if user == nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	if user.Status != StatusActive {
		response.Forbidden(c, "Account is not active")
		return
	}

	tok, err := h.issueToken(user)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	response.Success(c, AuthResponse{Token: tok, User: user})
}

// Me godoc
// @Summary Get the authenticated account
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, err := h.repo.FindByID(c.Request.Context(), c.GetString("subjectID"))
	if err != nil {
		log.Printf("auth: lookup error: %v", err)
		response.StorageError(c, err, "Failed to load account")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, user)
}

func (h *Handler) issueToken(user *User) (string, error) {
	expiry := time.Duration(h.cfg.JWTExpireHours) * time.Hour
	return token.Generate(user.ID.Hex(), user.Email, user.Role, h.cfg.JWTSecret, expiry)
}
