package httpapi

import (
	"github.com/StinkyJeans/Ecommerce-sub001/internal/audit"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/config"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/security"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/store"
)

type Server struct {
	cfg      *config.Config
	st       *store.Store
	audit    *audit.Logger
	sessions *security.Sessions
	keys     *security.KeyManager
	verifier *security.Verifier
}

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AddToCartReq struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type RemoveFromCartReq struct {
	ProductID string `json:"productId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
