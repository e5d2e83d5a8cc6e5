package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes registers the public authentication routes with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login)
}

// RegisterProfileRoutes registers the authenticated profile routes.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", GetMe)
}

// RegisterRequest are the parameters for creating an account.
type RegisterRequest struct {
	Username string `json:"username" example:"taylor"`             // Unique login and display name
	Email    string `json:"email" example:"taylor@example.com"`    // Unique email address
	Password string `json:"password" example:"correct horse b s"` // At least 8 characters
}

type LoginRequest struct {
	Username string `json:"username" example:"taylor" default:""`           // Either username …
	Email    string `json:"email" example:"taylor@example.com" default:""`  // … or email identifies the account
	Password string `json:"password" example:"correct horse b s"`           // The account password
}

type ProfileResponse struct {
	Data  *models.Profile `json:"data"`                                             // The profile
	Error *string         `json:"error" example:"this username is already taken"`   // The error, if any occurred
}

type LoginResponse struct {
	Data  *Session `json:"data"`                                            // The session
	Error *string  `json:"error" example:"no account matches these credentials"` // The error, if any occurred
}

type Session struct {
	Token     string         `json:"token"`     // Bearer token for the Authorization header
	ExpiresAt time.Time      `json:"expiresAt"` // When the token stops working
	Profile   models.Profile `json:"profile"`   // The authenticated profile
}

// @Summary		Register
// @Description	Creates a new profile
// @Tags			Auth
// @Produce		json
// @Success		201		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		RegisterRequest	true	"Profile"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	request.Username = strings.TrimSpace(request.Username)
	if request.Username == "" || request.Email == "" {
		e := errMissingCredentials.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &e})
		return
	}

	if err := checkmail.ValidateFormat(request.Email); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &e})
		return
	}

	profile := models.Profile{
		Username:     request.Username,
		Email:        strings.ToLower(request.Email),
		PasswordHash: hash,
	}

	err = models.DB.Create(&profile).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ProfileResponse{Data: &profile})
}

// @Summary		Login
// @Description	Issues a Bearer token for an existing profile
// @Tags			Auth
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	if (request.Username == "" && request.Email == "") || request.Password == "" {
		e := errMissingCredentials.Error()
		c.JSON(http.StatusBadRequest, LoginResponse{Error: &e})
		return
	}

	var profile models.Profile
	query := models.DB
	if request.Email != "" {
		query = query.Where(&models.Profile{Email: strings.ToLower(request.Email)})
	} else {
		query = query.Where(&models.Profile{Username: request.Username})
	}

	err = query.First(&profile).Error
	if err != nil {
		// Do not leak whether the account exists
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			e := errWrongCredentials.Error()
			c.JSON(http.StatusUnauthorized, LoginResponse{Error: &e})
			return
		}

		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	if !auth.CheckPassword(profile.PasswordHash, request.Password) {
		e := errWrongCredentials.Error()
		c.JSON(http.StatusUnauthorized, LoginResponse{Error: &e})
		return
	}

	token, expiresAt, err := auth.IssueToken(profile.ID, auth.TokenLifetime)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   profile,
	}})
}

// @Summary		Get own profile
// @Description	Returns the authenticated profile
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profiles/me [get]
func GetMe(c *gin.Context) {
	var profile models.Profile
	err := models.DB.First(&profile, auth.ProfileID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}
