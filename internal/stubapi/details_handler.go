package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medibill/internal/domain"
)

func (s *Server) saveDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var d domain.Details
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Store.SaveDetails(id, d))
}

func (s *Server) getDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := s.Store.Details(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) deleteDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.Store.DeleteDetails(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
