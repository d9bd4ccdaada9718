package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/quickfuel/fuelquote/internal/server/http/handlers"
	"github.com/quickfuel/fuelquote/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.FuelQuoteFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	quoteHandler := handlers.NewQuoteHandler(facade, facade)

	engine.GET("/login", authHandler.LoginPage)
	engine.POST("/login", authHandler.Login)
	engine.GET("/register", authHandler.RegisterPage)
	engine.POST("/register", authHandler.Register)
	engine.GET("/logout", authHandler.Logout)
	engine.POST("/logout", authHandler.Logout)

	authed := engine.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/", profileHandler.Home)
	authed.GET("/profile", profileHandler.Show)
	authed.POST("/profile", profileHandler.Save)
	authed.GET("/get_profile_data", profileHandler.ProfileData)
	authed.GET("/fuel_quote_form", quoteHandler.Form)
	authed.POST("/fuel_quote_form", quoteHandler.Submit)
	authed.GET("/history", quoteHandler.History)

	return engine
}
