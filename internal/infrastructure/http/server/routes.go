package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/makelifebetter/storefront-service/internal/infrastructure/http/middleware"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/monitoring"
)

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	monitoring.RegisterMetricsEndpoint(mux)
	mux.HandleFunc("/health", s.healthHandler.HandleHealth())

	mux.HandleFunc("/products", s.handleProducts)
	mux.HandleFunc("/products/", s.handleProductRoutes)

	mux.HandleFunc("/cart", s.handleCart)
	mux.HandleFunc("/cart/items", s.handleCartItems)
	mux.HandleFunc("/cart/items/", s.handleCartItemRoutes)

	mux.HandleFunc("/checkout", s.handleCheckout)
	mux.HandleFunc("/checkout/", s.handleCheckoutRoutes)

	mux.HandleFunc("/orders", s.handleOrders)
	mux.HandleFunc("/orders/", s.handleOrderRoutes)

	mux.HandleFunc("/admin/products", s.handleAdminProducts)
	mux.HandleFunc("/admin/products/", s.handleAdminProductRoutes)
	mux.HandleFunc("/admin/orders", s.handleAdminOrders)
	mux.HandleFunc("/admin/orders/", s.handleAdminOrderRoutes)

	handler := middleware.NewRecoveryMiddleware(s.logger)(mux)
	handler = middleware.NewLoggingMiddleware(s.logger)(handler)
	handler = monitoring.WrapHandler(handler)
	handler = s.corsMiddleware(handler)
	handler = s.timeoutMiddleware(handler)

	return handler
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.catalogHandler.HandleListProducts(w, r)
}

func (s *Server) handleProductRoutes(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimPrefix(r.URL.Path, "/products/")
	if productID == "" || strings.Contains(productID, "/") || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s.catalogHandler.HandleGetProduct(w, r, productID)
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.cartHandler.HandleGetCart(w, r)
	case http.MethodDelete:
		s.cartHandler.HandleClearCart(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCartItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.cartHandler.HandleAddItem(w, r)
}

func (s *Server) handleCartItemRoutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	parts := strings.Split(path, "/")

	index, err := strconv.Atoi(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 1 {
		if r.Method == http.MethodDelete {
			s.cartHandler.HandleRemoveItem(w, r, index)
			return
		}
	} else if len(parts) == 2 && parts[1] == "quantity" {
		if r.Method == http.MethodPost {
			s.cartHandler.HandleUpdateQuantity(w, r, index)
			return
		}
	}

	http.NotFound(w, r)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.checkoutHandler.HandleOpen(w, r)
	case http.MethodGet:
		s.checkoutHandler.HandleGet(w, r)
	case http.MethodDelete:
		s.checkoutHandler.HandleClose(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCheckoutRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	action := strings.TrimPrefix(r.URL.Path, "/checkout/")
	switch action {
	case "address":
		s.checkoutHandler.HandleSubmitAddress(w, r)
	case "back":
		s.checkoutHandler.HandleBack(w, r)
	case "shipping":
		s.checkoutHandler.HandleSelectShipping(w, r)
	case "payment":
		s.checkoutHandler.HandleSelectPayment(w, r)
	case "submit":
		s.checkoutHandler.HandleSubmit(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.ordersHandler.HandleListOrders(w, r)
}

func (s *Server) handleOrderRoutes(w http.ResponseWriter, r *http.Request) {
	orderID := strings.TrimPrefix(r.URL.Path, "/orders/")
	if orderID == "" || strings.Contains(orderID, "/") || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s.ordersHandler.HandleGetOrder(w, r, orderID)
}

func (s *Server) handleAdminProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.adminHandler.HandleCreateProduct(w, r)
}

func (s *Server) handleAdminProductRoutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	parts := strings.Split(path, "/")
	if parts[0] == "" {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 2 && parts[1] == "active" {
		if r.Method == http.MethodPost {
			s.adminHandler.HandleSetProductActive(w, r, parts[0])
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if len(parts) != 1 {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.adminHandler.HandleUpdateProduct(w, r, parts[0])
	case http.MethodDelete:
		s.adminHandler.HandleDeleteProduct(w, r, parts[0])
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleAdminOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.adminHandler.HandleListAllOrders(w, r)
}

func (s *Server) handleAdminOrderRoutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/orders/")
	parts := strings.Split(path, "/")

	if len(parts) == 2 && parts[1] == "status" && r.Method == http.MethodPost {
		s.adminHandler.HandleUpdateOrderStatus(w, r, parts[0])
		return
	}

	http.NotFound(w, r)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-User-ID, X-Session-ID")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "300")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.TimeoutHandler(next, 60*time.Second, "Request timeout")
}
