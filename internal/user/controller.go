package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	service ServiceInterface
}

func NewController(service ServiceInterface) *Controller {
	return &Controller{service: service}
}

// Signup handles user registration.
func (uc *Controller) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	// Malformed bodies take the same catch-all path as storage errors.
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Error("Signup error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error during signup",
		})
		return
	}

	userID, err := uc.service.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Username already exists",
			})
			return
		}
		logrus.WithError(err).Error("Signup error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error during signup",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"userId":  userID,
	})
}

// Login handles user login and returns the matching user id.
func (uc *Controller) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Error("Login error")
		c.String(http.StatusInternalServerError, "Error logging in")
		return
	}

	userID, err := uc.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.String(http.StatusBadRequest, "Invalid username or password")
			return
		}
		logrus.WithError(err).Error("Login error")
		c.String(http.StatusInternalServerError, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID})
}
