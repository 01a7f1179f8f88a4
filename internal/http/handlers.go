package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/StinkyJeans/Ecommerce-sub001/internal/security"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	registerSwagger(r)

	// @Summary Service status
	// @Tags System
	// @Produce json
	// @Success 200 {object} map[string]interface{} "status=ok"
	// @Router / [get]
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{
			"status":  "ok",
			"name":    s.cfg.Server.Name,
			"version": s.cfg.Server.Version,
		})
	})

	// @Summary Health check
	// @Description Reports Redis connectivity
	// @Tags System
	// @Produce json
	// @Success 200 {object} map[string]interface{} "status, redis_ping"
	// @Router /healthz [get]
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		err := s.st.Ping(r.Context())
		writeJSON(w, 200, map[string]any{
			"status":     "ok",
			"redis_ping": err == nil,
		})
	})

	r.Post("/api/auth/register", s.register)
	r.Post("/api/auth/login", s.login)

	// Everything below requires a session AND a valid request signature.
	r.Group(func(pr chi.Router) {
		pr.Use(security.SignedRequestMiddleware(s.verifier, s.sessions))

		pr.Post("/api/cart/add", s.addToCart)
		pr.Post("/api/cart/remove", s.removeFromCart)
		pr.Get("/api/cart", s.getCart)
		pr.Post("/api/checkout", s.checkout)
		pr.Get("/api/orders", s.listOrders)
	})

	return r
}

// register creates a buyer account.
// @Summary Register
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterReq true "registration request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "bad_json"
// @Failure 409 {object} ErrorResponse "email_taken"
// @Router /api/auth/register [post]
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, ErrorResponse{Error: "bad_json"})
		return
	}
	req.Email = emailNorm(req.Email)
	if req.Email == "" || req.Password == "" {
		writeJSON(w, 422, ErrorResponse{Error: "email_and_password_required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "internal"})
		return
	}

	u := store.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	created, err := s.st.CreateUser(ctx, u)
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "storage"})
		return
	}
	if !created {
		writeJSON(w, 409, ErrorResponse{Error: "email_taken"})
		return
	}

	s.audit.Write(map[string]any{
		"event":  "auth.register",
		"user":   u.ID,
		"result": "ok",
	})
	writeJSON(w, 200, map[string]any{"id": u.ID, "email": u.Email})
}

// login verifies credentials, issues a session token, and rotates the
// signing key. The returned signing_key is the only time the raw secret
// travels to the client; the previous key stops verifying immediately.
// @Summary Login
// @Description Issues a session token and a fresh request-signing key
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginReq true "login request"
// @Success 200 {object} map[string]interface{} "token, signing_key, ttl"
// @Failure 401 {object} ErrorResponse "bad_credentials"
// @Router /api/auth/login [post]
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, ErrorResponse{Error: "bad_json"})
		return
	}
	req.Email = emailNorm(req.Email)

	u, err := s.st.GetUserByEmail(ctx, req.Email)
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "storage"})
		return
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		s.audit.Write(map[string]any{
			"event":  "auth.login",
			"email":  req.Email,
			"result": "bad_credentials",
		})
		writeJSON(w, 401, ErrorResponse{Error: "bad_credentials"})
		return
	}

	token, ttl, err := s.sessions.Issue(u.ID)
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "internal"})
		return
	}

	// A failed key write must fail the login: a session whose key never
	// reached the store cannot make a single verifiable request.
	secret, err := s.keys.Regenerate(ctx, u.ID)
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "storage"})
		return
	}

	s.audit.Write(map[string]any{
		"event":  "auth.login",
		"user":   u.ID,
		"result": "ok",
		"key":    "rotated",
	})
	writeJSON(w, 200, map[string]any{
		"token":       token,
		"ttl":         ttl,
		"signing_key": secret,
	})
}

// addToCart adds or merges a cart line.
// @Summary Add to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body AddToCartReq true "cart line"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse "invalid signature"
// @Router /api/cart/add [post]
func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := security.UserIDFromContext(ctx)

	var req AddToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, ErrorResponse{Error: "bad_json"})
		return
	}
	if req.ProductID == "" || req.Quantity <= 0 {
		writeJSON(w, 422, ErrorResponse{Error: "product_and_quantity_required"})
		return
	}

	cart, err := s.st.AddCartItem(ctx, userID, store.CartItem{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "storage"})
		return
	}
	writeJSON(w, 200, map[string]any{"cart": cart})
}

// removeFromCart drops a cart line.
// @Summary Remove from cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body RemoveFromCartReq true "product to remove"
// @Success 200 {object} map[string]interface{}
// @Router /api/cart/remove [post]
func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := security.UserIDFromContext(ctx)

	var req RemoveFromCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, ErrorResponse{Error: "bad_json"})
		return
	}

	cart, err := s.st.RemoveCartItem(ctx, userID, req.ProductID)
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "storage"})
		return
	}
	writeJSON(w, 200, map[string]any{"cart": cart})
}

// getCart returns the caller's cart.
// @Summary Get cart
// @Tags Cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/cart [get]
func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := security.UserIDFromContext(ctx)

	cart, err := s.st.GetCart(ctx, userID)
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "storage"})
		return
	}
	writeJSON(w, 200, map[string]any{"cart": cart})
}

// checkout snapshots the cart into an order and clears it.
// @Summary Checkout
// @Tags Orders
// @Produce json
// @Success 200 {object} map[string]interface{} "order"
// @Failure 422 {object} ErrorResponse "empty_cart"
// @Router /api/checkout [post]
func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := security.UserIDFromContext(ctx)

	cart, err := s.st.GetCart(ctx, userID)
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "storage"})
		return
	}
	if len(cart.Items) == 0 {
		writeJSON(w, 422, ErrorResponse{Error: "empty_cart"})
		return
	}

	order := store.Order{
		ID:     uuid.NewString(),
		UserID: userID,
		Items:  cart.Items,
		Status: "pending",
	}
	if err := s.st.CreateOrder(ctx, order); err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "storage"})
		return
	}
	_ = s.st.ClearCart(ctx, userID)

	s.audit.Write(map[string]any{
		"event":  "order.create",
		"user":   userID,
		"order":  order.ID,
		"items":  len(order.Items),
		"result": "ok",
	})
	writeJSON(w, 200, map[string]any{"order": order})
}

// listOrders returns the caller's orders, optionally filtered by status.
// @Summary List orders
// @Tags Orders
// @Produce json
// @Param status query string false "order status filter"
// @Success 200 {object} map[string]interface{}
// @Router /api/orders [get]
func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := security.UserIDFromContext(ctx)

	orders, err := s.st.ListOrders(ctx, userID, r.URL.Query().Get("status"))
	if err != nil {
		writeJSON(w, 500, ErrorResponse{Error: "storage"})
		return
	}
	if orders == nil {
		orders = []store.Order{}
	}
	writeJSON(w, 200, map[string]any{"orders": orders})
}
