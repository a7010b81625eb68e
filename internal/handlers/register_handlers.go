package handlers

import (
	"github.com/NgurahFajar/damar-exchange-backend/cmd/docs"
	portssvc "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/middleware"
	"github.com/NgurahFajar/damar-exchange-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register authentication routes (public, rate limited)
	registerAuthRoutes(r, cfg, services)

	// Public conversion and catalog reads
	setupPublicAPIV1Routes(r, services, cfg)

	// Admin routes behind the auth middleware
	setupProtectedAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators plugs extra binding rules into Gin's validator.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// curcode: a currency code is 3 to 10 ASCII letters or digits.
		// Case is accepted here; the service uppercases before storing.
		_ = v.RegisterValidation("curcode", func(fl validator.FieldLevel) bool {
			code := fl.Field().String()
			if len(code) < 3 || len(code) > 10 {
				return false
			}
			for _, r := range code {
				if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
					return false
				}
			}
			return true
		})
	}
}

// setupPublicAPIV1Routes configures the unauthenticated /api/v1 surface: the
// conversion engine and the read side of the currency catalog.
func setupPublicAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	cfg *config.Config,
) {
	v1 := r.Group("/api/v1")

	registerConversionRoutes(v1, services.Conversion)
	registerPublicCurrencyRoutes(v1, services.Currency, cfg)
}

// setupProtectedAPIV1Routes configures the /api/v1 admin group behind JWT auth
func setupProtectedAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCurrencyAdminRoutes(v1, services.Currency, services.RateSnapshot, cfg)
	registerImageRoutes(v1, services.Image)
	registerDashboardRoutes(v1, services.Dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
