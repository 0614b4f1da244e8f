package router

import (
	"time"

	"dietracker/internal/auth"
	"dietracker/internal/middleware"
	"dietracker/internal/tracker"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth        *auth.Handler
	Tokens      *auth.TokenIssuer
	Tracker     *tracker.Handler
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.Use(cors.New(corsConfig(d.CORSOrigins)))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", d.Auth.Register)
		authGroup.POST("/login", d.Auth.Login)
	}

	// ───────────────────────── TRACKER ─────────────────────────
	trk := r.Group("/tracker")
	trk.Use(middleware.AuthMiddleware(d.Tokens))
	{
		trk.GET("/session", d.Tracker.GetSession)
		trk.POST("/profile", d.Tracker.CreatePlan)
		trk.POST("/navigate", d.Tracker.Navigate)

		trk.GET("/foods", d.Tracker.ListFoods)
		trk.GET("/foods/:name", d.Tracker.GetFood)

		trk.GET("/meals/options", d.Tracker.MealOptions)
		trk.POST("/meals/analyze", d.Tracker.Analyze)
		trk.POST("/meals/predict", d.Tracker.Predict)
		trk.POST("/meals/accept", d.Tracker.Accept)
		trk.POST("/meals/cancel", d.Tracker.Cancel)

		trk.DELETE("/log", d.Tracker.Reset)
		trk.POST("/log/save", d.Tracker.Save)
		trk.GET("/history", d.Tracker.History)
	}

	return r
}

// corsConfig allows any origin without credentials when none are listed.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
