package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medibill/internal/domain"
)

func (s *Server) addStock(c *gin.Context) {
	var b domain.StockBatch
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	if b.UserID == 0 {
		b.UserID = currentUserID(c)
	}
	c.JSON(http.StatusCreated, s.Store.AddStock(b))
}

func (s *Server) stockForUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Store.StockForUser(id))
}

func (s *Server) updateStock(c *gin.Context) {
	var upd domain.StockUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	updated, err := s.Store.UpdateStock(upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) searchStock(c *gin.Context) {
	var req domain.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Store.SearchStock(req))
}
