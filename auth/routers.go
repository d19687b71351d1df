package auth

import (
	"net/http"
	"time"

	"property-dashboard/common"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// CookieName carries the session token
const CookieName = "auth"

// sessionTTL is how long a login lasts
const sessionTTL = 24 * time.Hour

// Config holds the credentials the dashboard checks logins against.
// PasswordHash is a bcrypt hash of the shared site password; JWTSecret
// signs session tokens. When either is empty, authentication is
// disabled and every request passes.
type Config struct {
	PasswordHash string
	JWTSecret    string
}

// Enabled reports whether logins are enforced
func (c Config) Enabled() bool {
	return c.PasswordHash != "" && c.JWTSecret != ""
}

// Server handles login requests
type Server struct {
	config Config
}

// NewServer creates an auth server
func NewServer(config Config) *Server {
	return &Server{config: config}
}

// RegisterRoutes registers the login endpoint
func (s *Server) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", s.Login)
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in to the dashboard
// @Description Checks the shared site password and sets a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged in"
// @Failure 401 {object} map[string]interface{} "Incorrect password"
// @Router /login [post]
func (s *Server) Login(c *gin.Context) {
	if !s.config.Enabled() {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if verr := common.ValidateRequired("password", req.Password); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": verr.Message})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Incorrect password"})
		return
	}

	token, err := s.issueToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create session"})
		return
	}

	c.SetCookie(CookieName, token, int(sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) issueToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "dashboard",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
