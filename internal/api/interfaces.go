package api

import "github.com/sociograph/sociograph/internal/domain"

// Handler dependencies reuse the domain interfaces rather than
// re-declaring equivalent ones; the service layer implements them.
type (
	// FollowRepository defines follow operations used by FollowHandler.
	FollowRepository = domain.FollowService

	// RecommendRepository defines recommendation operations used by RecommendHandler.
	RecommendRepository = domain.RecommendService

	// GraphRepository defines traversal operations used by GraphHandler.
	GraphRepository = domain.GraphService

	// AnalyticsRepository defines statistics operations used by AnalyticsHandler.
	AnalyticsRepository = domain.AnalyticsService

	// AdminRepository defines administrative operations used by AdminHandler.
	AdminRepository = domain.AdminService
)
