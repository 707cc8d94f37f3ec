package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acllc88/bugleboy-radio/internal/auth"
	"github.com/acllc88/bugleboy-radio/internal/models"
	"github.com/acllc88/bugleboy-radio/internal/radio"
	"github.com/acllc88/bugleboy-radio/internal/repository"
)

type AuthHandler struct {
	userRepo   *repository.UserRepository
	jwtService *auth.JWTService
	service    *radio.Service
}

func NewAuthHandler(userRepo *repository.UserRepository, jwtService *auth.JWTService, service *radio.Service) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		jwtService: jwtService,
		service:    service,
	}
}

// Register handles account creation and signs the listener in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		AvatarURL:    req.AvatarURL,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.userRepo.Create(user); err != nil {
		if errors.Is(err, auth.ErrEmailInUse) {
			ErrorResponse(c, http.StatusConflict, auth.FriendlyMessage(err))
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, auth.FriendlyMessage(err))
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := h.service.SignIn(c.Request.Context(), user); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to start session")
		return
	}

	c.JSON(http.StatusCreated, models.LoginResponse{
		Token: token,
		User:  *user,
	})
}

// Login verifies credentials and binds the listener session: presence
// heartbeat, chat sender and favorites merge all start here.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userRepo.GetByEmail(req.Email)
	if err != nil {
		ErrorResponse(c, http.StatusUnauthorized, auth.FriendlyMessage(auth.ErrUserNotFound))
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		ErrorResponse(c, http.StatusUnauthorized, auth.FriendlyMessage(auth.ErrWrongPassword))
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := h.service.SignIn(c.Request.Context(), user); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to start session")
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  *user,
	})
}

// Logout releases the listener session and its presence record.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.SignOut()
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// GetMe returns the current user
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	uid := userID.(uuid.UUID)

	user, err := h.userRepo.GetByID(uid)
	if err != nil {
		ErrorResponse(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}
