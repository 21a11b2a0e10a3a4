package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medibill/internal/domain"
)

func (s *Server) createBill(c *gin.Context) {
	var b domain.Bill
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	if b.UserID == 0 {
		b.UserID = currentUserID(c)
	}
	c.JSON(http.StatusCreated, s.Store.CreateBill(b))
}

func (s *Server) addBillItem(c *gin.Context) {
	var item domain.BillItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}

	// The client may only send the draft amount; trust it like the real
	// backend does and recompute nothing here.
	created, err := s.Store.AddBillItem(item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) getBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	bill, err := s.Store.Bill(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (s *Server) billsForUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Store.BillsForUser(id))
}
