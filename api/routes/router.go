package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marketconnect/backend/api/controllers"
	"github.com/marketconnect/backend/api/middleware"
	"github.com/marketconnect/backend/api/responses"
	"github.com/marketconnect/backend/internal/orders"
	"github.com/marketconnect/backend/internal/payments"
	"github.com/marketconnect/backend/internal/productgroups"
	"github.com/marketconnect/backend/internal/suppliers"
	"github.com/marketconnect/backend/internal/vendors"
	"github.com/marketconnect/backend/pkg/config"
	"github.com/marketconnect/backend/pkg/db"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"github.com/marketconnect/backend/pkg/logger"
	"github.com/marketconnect/backend/pkg/metrics"
	pkgredis "github.com/marketconnect/backend/pkg/redis"
)

// Deps carries the wired services and infrastructure the router needs.
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	DB        db.Pinger
	Redis     pkgredis.IdempotencyStore
	Metrics   *metrics.HTTPMetrics
	Registry  *prometheus.Registry
	Vendors   vendors.Service
	Suppliers suppliers.Service
	Groups    productgroups.Service
	Orders    orders.Service
	Payments  payments.Service
}

// NewRouter assembles the HTTP surface.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger, deps.Metrics),
		middleware.CORS(corsConfig(deps.Config)),
		middleware.Idempotency(deps.Redis, deps.Logger),
	)

	r.Get("/api/health", controllers.Health(deps.DB))

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/vendors", func(r chi.Router) {
		r.Post("/", controllers.CreateVendor(deps.Vendors, deps.Logger))
		r.Get("/", controllers.ListVendors(deps.Vendors, deps.Logger))
		r.Get("/{id}", controllers.GetVendor(deps.Vendors, deps.Logger))
	})

	r.Route("/api/suppliers", func(r chi.Router) {
		r.Post("/", controllers.CreateSupplier(deps.Suppliers, deps.Logger))
		r.Get("/", controllers.ListSuppliers(deps.Suppliers, deps.Logger))
		// search routes registered ahead of /{id} so "search" never
		// parses as an id
		r.Get("/search/capabilities", controllers.SearchSuppliersByCapabilities(deps.Suppliers, deps.Logger))
		r.Get("/search/location", controllers.SearchSuppliersByLocation(deps.Suppliers, deps.Logger))
		r.Get("/{id}", controllers.GetSupplier(deps.Suppliers, deps.Logger))
		r.Put("/{id}", controllers.UpdateSupplier(deps.Suppliers, deps.Logger))
		r.Delete("/{id}", controllers.DeleteSupplier(deps.Suppliers, deps.Logger))
	})

	r.Route("/api/product-groups", func(r chi.Router) {
		r.Post("/", controllers.CreateProductGroup(deps.Groups, deps.Logger))
		r.Get("/", controllers.ListProductGroups(deps.Groups, deps.Logger))
		r.Get("/{id}", controllers.GetProductGroup(deps.Groups, deps.Logger))
		r.Patch("/{id}/status", controllers.UpdateProductGroupStatus(deps.Groups, deps.Logger))
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", controllers.CreateOrder(deps.Orders, deps.Logger))
		r.Get("/", controllers.ListOrders(deps.Orders, deps.Logger))
		r.Get("/vendor/{vendorId}", controllers.ListVendorOrders(deps.Orders, deps.Logger))
		r.Get("/supplier/{supplierId}", controllers.ListSupplierOrders(deps.Orders, deps.Logger))
		r.Get("/{orderId}", controllers.GetOrder(deps.Orders, deps.Logger))
		r.Put("/{orderId}/status", controllers.UpdateOrderStatus(deps.Orders, deps.Logger))
		r.Delete("/{orderId}", controllers.DeleteOrder(deps.Orders, deps.Logger))
	})

	r.Post("/api/payments/verify", controllers.VerifyPayment(deps.Payments, deps.Logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), deps.Logger, w,
			pkgerrors.New(pkgerrors.CodeNotFound, "Route not found"))
	})

	return r
}

func corsConfig(cfg *config.Config) config.CORSConfig {
	if cfg == nil {
		return config.CORSConfig{}
	}
	return cfg.CORS
}
