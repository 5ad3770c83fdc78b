package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"planetholiday/auth"
	"planetholiday/blogs"
	"planetholiday/destinations"
	"planetholiday/filemgr"
	"planetholiday/leads"
	"planetholiday/middleware"
	"planetholiday/ratelim"
	"planetholiday/tours"
	"planetholiday/utils"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddTourRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	// Public catalog
	router.GET("/api/tours/featured", tours.GetFeaturedTours)
	router.GET("/api/tours/search", tours.SearchTours)
	router.GET("/api/tours/category/:category", tours.GetToursByCategory)
	router.GET("/api/tours/tour/:slug", tours.GetTourBySlug)

	// Admin
	router.GET("/api/admin/tours", middleware.Authenticate(tours.ListTours))
	router.POST("/api/admin/tours", middleware.Authenticate(tours.CreateTour))
	router.PUT("/api/admin/tours/:id", middleware.Authenticate(tours.UpdateTour))
	router.DELETE("/api/admin/tours/:id", middleware.Authenticate(tours.DeleteTour))
	router.POST("/api/admin/tours/:id/images", middleware.Authenticate(tours.AddTourImage))
	router.DELETE("/api/admin/tours/:id/images", middleware.Authenticate(tours.RemoveTourImage))
	router.PATCH("/api/admin/tours/:id/status", middleware.Authenticate(tours.SetTourStatus))
	router.PATCH("/api/admin/tours/:id/featured", middleware.Authenticate(tours.ToggleTourFeatured))

	// Ratings come from the public site, throttled
	router.POST("/api/tours/tour/:slug/rating", rl.Limit(tours.UpdateTourRating))
}

func AddDestinationRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/destinations/featured", destinations.GetFeaturedDestinations)
	router.GET("/api/destinations/search", destinations.SearchDestinations)
	router.GET("/api/destinations/nearby", destinations.GetNearbyDestinations)
	router.GET("/api/destinations/category/:category", destinations.GetDestinationsByCategory)
	router.GET("/api/destinations/region/:region", destinations.GetDestinationsByRegion)
	router.GET("/api/destinations/destination/:slug", destinations.GetDestinationBySlug)

	router.GET("/api/admin/destinations", middleware.Authenticate(destinations.ListDestinations))
	router.POST("/api/admin/destinations", middleware.Authenticate(destinations.CreateDestination))
	router.PUT("/api/admin/destinations/:id", middleware.Authenticate(destinations.UpdateDestination))
	router.DELETE("/api/admin/destinations/:id", middleware.Authenticate(destinations.DeleteDestination))
	router.POST("/api/admin/destinations/:id/attractions", middleware.Authenticate(destinations.AddAttraction))
	router.DELETE("/api/admin/destinations/:id/attractions/:name", middleware.Authenticate(destinations.RemoveAttraction))
	router.POST("/api/admin/destinations/:id/images", middleware.Authenticate(destinations.AddDestinationImage))
	router.DELETE("/api/admin/destinations/:id/images", middleware.Authenticate(destinations.RemoveDestinationImage))
	router.PATCH("/api/admin/destinations/:id/status", middleware.Authenticate(destinations.SetDestinationStatus))
	router.PATCH("/api/admin/destinations/:id/featured", middleware.Authenticate(destinations.ToggleDestinationFeatured))

	router.POST("/api/destinations/destination/:slug/rating", rl.Limit(destinations.UpdateDestinationRating))
}

func AddBlogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/blog", blogs.GetPublishedArticles)
	router.GET("/api/blog/featured", blogs.GetFeaturedArticles)
	router.GET("/api/blog/search", blogs.SearchArticles)
	router.GET("/api/blog/category/:category", blogs.GetArticlesByCategory)
	router.GET("/api/blog/article/:slug", blogs.GetArticleBySlug)
	router.GET("/api/blog/article/:slug/related", blogs.GetRelatedArticles)
	router.POST("/api/blog/article/:slug/like", rl.Limit(blogs.LikeArticle))

	// Public comments, throttled to keep drive-by spam down
	router.GET("/api/blog/article/:slug/comments", blogs.ListComments)
	router.POST("/api/blog/article/:slug/comments", rl.Limit(blogs.AddComment))

	router.GET("/api/admin/blog", middleware.Authenticate(blogs.ListArticles))
	router.POST("/api/admin/blog", middleware.Authenticate(blogs.CreateArticle))
	router.PUT("/api/admin/blog/:id", middleware.Authenticate(blogs.UpdateArticle))
	router.DELETE("/api/admin/blog/:id", middleware.Authenticate(blogs.DeleteArticle))
	router.PATCH("/api/admin/blog/:id/status", middleware.Authenticate(blogs.SetArticleStatus))
	router.PATCH("/api/admin/blog/:id/featured", middleware.Authenticate(blogs.ToggleArticleFeatured))
	router.POST("/api/admin/blog/:id/images", middleware.Authenticate(blogs.AddArticleImage))
	router.DELETE("/api/admin/blog/:id/images", middleware.Authenticate(blogs.RemoveArticleImage))

	router.GET("/api/admin/comments", middleware.Authenticate(blogs.ListAllComments))
	router.PATCH("/api/admin/comments/:id/approve", middleware.Authenticate(blogs.ApproveComment))
	router.DELETE("/api/admin/comments/:id", middleware.Authenticate(blogs.RemoveComment))
}

func AddLeadRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, relay *leads.Relay, hub *leads.Hub) {
	router.POST("/api/leads", rl.Limit(leads.SubmitLead(relay, hub)))

	router.GET("/api/admin/leads", middleware.Authenticate(leads.ListLeads(relay)))
	router.PATCH("/api/admin/leads/:id/status", middleware.Authenticate(leads.UpdateLeadStatus(relay)))
	router.DELETE("/api/admin/leads/:id", middleware.Authenticate(leads.DeleteLead(relay)))
	router.GET("/api/admin/leads/:id/pdf", middleware.Authenticate(leads.ExportLeadPDF(relay)))

	router.GET("/api/admin/leads-config", middleware.Authenticate(leads.GetLeadFormConfig(relay)))
	router.PUT("/api/admin/leads-config", middleware.Authenticate(leads.UpdateLeadFormConfig(relay)))
	router.POST("/api/admin/leads-config/reload", middleware.Authenticate(leads.ReloadLeadFormConfig(relay)))
	router.POST("/api/admin/leads-test", middleware.Authenticate(leads.TestLeadIntegration(relay)))

	router.GET("/ws/leads", middleware.Authenticate(leads.WebSocketHandler(hub)))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("./static/uploads"))
	router.POST("/api/admin/upload", middleware.Authenticate(filemgr.UploadImage))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "ok"})
	})
}
