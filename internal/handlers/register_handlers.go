package handlers

import (
	"fmt"

	"github.com/SscSPs/money_changer_pos/cmd/docs"
	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"
	"github.com/SscSPs/money_changer_pos/internal/middleware"
	"github.com/SscSPs/money_changer_pos/internal/platform/config"
	"github.com/SscSPs/money_changer_pos/internal/web"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	tmpl, err := web.ParseTemplates()
	if err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// CORS sits on the engine so preflight requests to unmatched OPTIONS routes are answered
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Add health check route
	r.GET("/health", getHealth)

	// Pages and session routes run inside a counter session; reference data does not
	withSession := middleware.SessionMiddleware(services.Session, SessionCookieConfig(cfg))
	counter := r.Group("/", withSession)
	registerCounterRoutes(counter, services)
	setupAPIV1Routes(r, services, withSession)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// SessionCookieConfig derives the session cookie settings from cfg.
func SessionCookieConfig(cfg *config.Config) middleware.SessionCookieConfig {
	return middleware.SessionCookieConfig{
		Name:   cfg.SessionCookieName,
		Secret: cfg.SessionSecret,
		Issuer: cfg.SessionIssuer,
		MaxAge: cfg.SessionIdleTimeout,
		Secure: cfg.IsProduction,
		Path:   "/",
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, withSession gin.HandlerFunc) {
	v1 := r.Group("/api/v1")

	registerCurrencyRoutes(v1, services.Currency)
	registerSessionRoutes(v1.Group("", withSession), services.Session)
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
