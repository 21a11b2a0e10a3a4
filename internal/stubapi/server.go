// Package stubapi is an in-process, in-memory implementation of the billing
// backend's REST contract. Tests run the client against it, and cmd/stubserver
// serves it for local development. It is not the real backend and holds no
// durable state.
package stubapi

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Server bundles the gin engine with its store and token service.
type Server struct {
	Engine *gin.Engine
	Store  *Store
	Tokens *TokenService
}

// New builds a stub server with the full route table. secret signs the
// bearer tokens; expiry bounds their lifetime.
func New(secret string, expiry time.Duration) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		Store:  NewStore(),
		Tokens: NewTokenService(secret, expiry),
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger())

	r.POST("/authenticate", s.authenticate)
	r.POST("/sign-up", s.signUp)

	authorized := r.Group("/", Auth(s.Tokens))
	authorized.POST("/refresh-token", s.refreshToken)

	api := authorized.Group("/api")
	{
		api.POST("/product/add", s.addProduct)
		api.GET("/product/all", s.listProducts)
		api.GET("/product/:id", s.getProduct)
		api.PUT("/product/edit/:id", s.editProduct)
		api.DELETE("/product/delete/:id", s.deleteProduct)
		api.POST("/product/search", s.searchProducts)

		api.POST("/stock/add", s.addStock)
		api.GET("/stock/user/:id", s.stockForUser)
		api.POST("/stock/update", s.updateStock)
		api.POST("/stock/search", s.searchStock)

		api.POST("/details/create/:id", s.saveDetails)
		api.GET("/details/:id", s.getDetails)
		api.PUT("/details/update/:id", s.saveDetails)
		api.DELETE("/details/delete/:id", s.deleteDetails)

		api.POST("/bill/add", s.createBill)
		api.POST("/bill_items/add", s.addBillItem)
		api.GET("/bill/:id", s.getBill)
		api.GET("/bill/user/:id", s.billsForUser)
	}

	s.Engine = r
	return s
}
