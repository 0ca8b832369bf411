package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/handlers"
)

func RegisterPublicRoutes(rg *gin.RouterGroup, handler *handlers.CatalogHandler) {
	{
		rg.GET("/subjects", handler.GetSubjects)
		rg.GET("/subjects/:id", handler.GetSubjectByID)
		rg.GET("/subjects/:id/aggregate/:axis", handler.Aggregate)
		rg.GET("/subjects/:id/most-voted/:axis", handler.MostVoted)
		rg.GET("/subjects/:id/voters/count", handler.UniqueVoterCount)

		rg.GET("/regions/:key/subjects", handler.ListSubjectsByRegion)

		rg.GET("/taxonomy/axes", handler.GetAxes)
		rg.GET("/taxonomy/:axis/tree", handler.GetAxisTree)
		rg.GET("/taxonomy/:axis/values", handler.GetAxisValues)

		rg.GET("/logs", handler.GetLogs)
	}
}

func RegisterPrivateRoutes(rg *gin.RouterGroup, handler *handlers.CatalogHandler) {
	{
		rg.POST("/subjects", handler.CreateSubject)
		rg.PUT("/subjects/:id", handler.UpdateSubject)
		rg.DELETE("/subjects/:id", handler.DeleteSubject)

		rg.POST("/subjects/:id/votes", handler.CastVote)
		rg.GET("/subjects/:id/votes/mine", handler.GetMyVotes)

		rg.GET("/subjects/:id/session/:family", handler.GetSession)
		rg.POST("/subjects/:id/session/:family", handler.SetSessionSelection)
		rg.POST("/subjects/:id/session/:family/commit", handler.CommitSession)
		rg.DELETE("/subjects/:id/session/:family", handler.DiscardSession)
	}
}
