package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hypechain/hypechain/internal/api/handlers"
	"github.com/hypechain/hypechain/internal/auth"
	"github.com/hypechain/hypechain/internal/cache"
	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/internal/hype"
	"github.com/hypechain/hypechain/internal/middleware"
	"github.com/hypechain/hypechain/pkg/config"
	"github.com/hypechain/hypechain/pkg/logging"
)

// Router sets up API routes
type Router struct {
	cfg    *config.Config
	db     *db.DB
	cache  *cache.Cache
	auth   *auth.Client
	logger *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(cfg *config.Config, database *db.DB, redisCache *cache.Cache, authClient *auth.Client) *Router {
	return &Router{
		cfg:    cfg,
		db:     database,
		cache:  redisCache,
		auth:   authClient,
		logger: logging.WithComponent("api-router"),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.Use(middleware.CORS())

	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	repo := db.NewRepository(r.db.DB)
	events := hype.NewPublisher(repo, r.cache)
	ledger := hype.NewLedger(r.db, r.cfg.Economy, events)
	rewards := hype.NewRewardEngine(r.db, r.cfg.Economy, events)

	hypeAPI := handlers.NewHypeAPI(ledger)
	rewardAPI := handlers.NewRewardAPI(rewards, repo)
	postAPI := handlers.NewPostAPI(repo)
	commentAPI := handlers.NewCommentAPI(repo, events)
	profileAPI := handlers.NewProfileAPI(repo)
	leaderboardAPI := handlers.NewLeaderboardAPI(repo, r.cache, r.cfg.Reconciler.LeaderboardTTL)
	chainAPI := handlers.NewChainAPI(repo)
	notificationAPI := handlers.NewNotificationAPI(repo)

	api := engine.Group("/api")

	// Public reads
	api.GET("/feed", postAPI.Feed)
	api.GET("/posts/:id", postAPI.GetPost)
	api.GET("/posts/:id/comments", commentAPI.ListComments)
	api.GET("/profiles/:id", profileAPI.GetProfile)
	api.GET("/profiles/:id/transactions", profileAPI.ListTransactions)
	api.GET("/leaderboard", leaderboardAPI.GetLeaderboard)
	api.GET("/chains", chainAPI.ListChains)
	api.GET("/chains/:id", chainAPI.GetChain)

	// Authenticated operations
	authed := api.Group("")
	authed.Use(middleware.Auth(r.auth))
	authed.POST("/hype/give", hypeAPI.GiveHype)
	authed.POST("/rewards/claim", rewardAPI.ClaimDailyReward)
	authed.GET("/rewards/status", rewardAPI.RewardStatus)
	authed.POST("/posts", postAPI.CreatePost)
	authed.PUT("/profiles/me", profileAPI.UpdateProfile)
	authed.POST("/posts/:id/comments", commentAPI.CreateComment)
	authed.POST("/chains", chainAPI.CreateChain)
	authed.GET("/notifications", notificationAPI.ListNotifications)
	authed.POST("/notifications/read", notificationAPI.MarkAllRead)

	r.logger.Info("API routes registered", zap.Int("routes", len(engine.Routes())))
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "OK",
		"service": "hypechain-api",
	})
}
