package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medibill/internal/domain"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// authenticate verifies credentials, returns the user record in the body
// and the bearer token in the Authorization response header, matching the
// real backend's login contract.
func (s *Server) authenticate(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}

	user, err := s.Store.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := s.Tokens.Mint(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, user)
}

// signUp registers a new account. Role defaults to USER.
func (s *Server) signUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}

	role := domain.UserRole(req.Role)
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}
	user, err := s.Store.CreateUser(req.Username, req.Password, req.Name, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// refreshToken reissues a token for the authenticated user.
func (s *Server) refreshToken(c *gin.Context) {
	userID := currentUserID(c)
	role, _ := c.Get(contextKeyRole)
	token, err := s.Tokens.Mint(&domain.User{UserID: userID, Role: domain.UserRole(role.(string))})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Authorization", "Bearer "+token)
	c.Status(http.StatusOK)
}
