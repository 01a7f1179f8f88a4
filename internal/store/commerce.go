package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetCart returns the user's cart, empty (not nil) when none exists yet.
func (s *Store) GetCart(ctx context.Context, userID string) (*Cart, error) {
	val, err := s.rdb.Get(ctx, s.key("cart", userID)).Result()
	if err == redis.Nil {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	var c Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) putCart(ctx context.Context, userID string, c *Cart) error {
	now := time.Now().Unix()
	if c.TS.Created == 0 {
		c.TS.Created = now
	}
	c.TS.Updated = now

	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key("cart", userID), string(b), 0).Err()
}

// AddCartItem merges quantity into an existing line or appends a new one.
func (s *Store) AddCartItem(ctx context.Context, userID string, item CartItem) (*Cart, error) {
	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, item)
	}
	if err := s.putCart(ctx, userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveCartItem drops the line for productID; removing an absent product
// is a no-op.
func (s *Store) RemoveCartItem(ctx context.Context, userID, productID string) (*Cart, error) {
	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	c.Items = out
	if err := s.putCart(ctx, userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ClearCart removes the cart entirely.
func (s *Store) ClearCart(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, s.key("cart", userID)).Err()
}

// CreateOrder appends an order to the user's order log.
func (s *Store) CreateOrder(ctx context.Context, o Order) error {
	if o.TS.Created == 0 {
		o.TS.Created = time.Now().Unix()
	}
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, s.key("orders", o.UserID), string(b)).Err()
}

// ListOrders returns the user's orders, newest last, optionally filtered
// by status.
func (s *Store) ListOrders(ctx context.Context, userID, status string) ([]Order, error) {
	vals, err := s.rdb.LRange(ctx, s.key("orders", userID), 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var orders []Order
	for _, v := range vals {
		var o Order
		if err := json.Unmarshal([]byte(v), &o); err != nil {
			return nil, err
		}
		if status != "" && o.Status != status {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}
