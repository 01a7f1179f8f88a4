package store

import (
	"github.com/StinkyJeans/Ecommerce-sub001/internal/config"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	cfg    *config.Config
	rdb    *redis.Client
	prefix string
}

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Created      int64  `json:"created"`
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Cart struct {
	Items []CartItem `json:"items"`

	TS struct {
		Created int64 `json:"created"`
		Updated int64 `json:"updated"`
	} `json:"ts"`
}

type Order struct {
	ID     string     `json:"id"`
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
	Status string     `json:"status"`

	TS struct {
		Created int64 `json:"created"`
	} `json:"ts"`
}
