package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"safari_tours/internal/session"
)

// AuthController guards the single hardcoded admin identity. The
// password is hashed at startup so a plaintext credential is never held
// or compared.
type AuthController struct {
	sessions     *session.Manager
	username     string
	passwordHash []byte
	identity     session.Data
}

func NewAuthController(sessions *session.Manager, username, password, email string) (*AuthController, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthController{
		sessions:     sessions,
		username:     username,
		passwordHash: hash,
		identity: session.Data{
			UserID:    "1",
			Username:  username,
			Role:      "admin",
			Email:     email,
			FirstName: "Admin",
			LastName:  "User",
		},
	}, nil
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}

	if body.Username != ctrl.username ||
		bcrypt.CompareHashAndPassword(ctrl.passwordHash, []byte(body.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if err := ctrl.sessions.Issue(c, ctrl.identity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": ctrl.identity})
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.sessions.Clear(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ctrl *AuthController) CurrentUser(c *gin.Context) {
	data, ok := ctrl.sessions.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, data)
}
