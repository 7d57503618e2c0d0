package http

import (
	"net/http"
	"time"

	"github.com/eventconnect/backend/internal/auth"
	"github.com/eventconnect/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	users    service.UserInteractor
	secret   string
	tokenTTL time.Duration
}

func NewUserController(users service.UserInteractor, secret string, tokenTTL time.Duration) *UserController {
	return &UserController{users: users, secret: secret, tokenTTL: tokenTTL}
}

func (c *UserController) Register(ctx *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := c.users.Register(ctx.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(user.ID, c.secret, c.tokenTTL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (c *UserController) Login(ctx *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := c.users.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(user.ID, c.secret, c.tokenTTL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// CurrentUser backs GET /api/auth/user: the session probe the clients
// poll. A missing or stale token is a plain 401, handled upstream by
// the auth middleware.
func (c *UserController) CurrentUser(ctx *gin.Context) {
	user, err := c.users.GetUser(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	type request struct {
		Name            *string   `json:"name"`
		Location        *string   `json:"location"`
		Interests       *[]string `json:"interests"`
		PersonalityTags *[]string `json:"personality_tags"`
		Bio             *string   `json:"bio"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := c.users.UpdateProfile(ctx.Request.Context(), currentUserID(ctx), service.ProfileUpdate{
		Name:            req.Name,
		Location:        req.Location,
		Interests:       req.Interests,
		PersonalityTags: req.PersonalityTags,
		Bio:             req.Bio,
	})
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (c *UserController) GenerateAvatar(ctx *gin.Context) {
	type request struct {
		Description string `json:"description"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	seed, err := c.users.GenerateAvatar(ctx.Request.Context(), currentUserID(ctx), req.Description)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"seed": seed})
}

func (c *UserController) UpdateAvatar(ctx *gin.Context) {
	type request struct {
		Seed      string `json:"seed"`
		AvatarURL string `json:"avatar_url"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := c.users.UpdateAvatar(ctx.Request.Context(), currentUserID(ctx), req.Seed, req.AvatarURL)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("userID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := c.users.GetUser(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}
