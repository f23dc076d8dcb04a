package router

import (
	"ShowFolio/internal/handler"
	"ShowFolio/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	api := r.Group("/api/v1")
	{
		api.POST("/register", handler.Register)
		api.GET("/activate", handler.Activate)
		api.POST("/login", handler.Login)

		// Public pages carry identity when a session exists so drafts
		// open for their contributors.
		public := api.Group("")
		public.Use(utils.OptionalAuthMiddleware())
		{
			public.GET("/project/list", handler.SearchProjects)
			public.GET("/project/:project_id", handler.GetProject)
			public.GET("/skill-tags", handler.ListSkillTags)
		}

		auth := api.Group("")
		auth.Use(utils.AuthMiddleware())

		project := auth.Group("/project")
		{
			project.POST("", handler.CreateProject)
			project.PUT("/:project_id/title", handler.UpdateProjectTitle)
			project.PUT("/:project_id/description", handler.UpdateProjectDescription)
			project.PUT("/:project_id/visibility", handler.UpdateProjectVisibility)

			project.POST("/:project_id/contributor", handler.AddContributor)
			project.PUT("/:project_id/contributor/:contributor_id", handler.UpdateContributor)
			project.DELETE("/:project_id/contributor/:contributor_id", handler.DeleteContributor)

			project.POST("/:project_id/question", handler.AddQuestion)
			project.PUT("/:project_id/question/:question_id", handler.UpdateQuestion)
			project.DELETE("/:project_id/question/:question_id", handler.DeleteQuestion)

			project.POST("/:project_id/owner", handler.TransferOwner)

			project.POST("/:project_id/link", handler.AddProjectLink)
			project.DELETE("/:project_id/link/:link_id", handler.DeleteProjectLink)

			project.POST("/:project_id/skill-tag", handler.AttachSkillTag)
			project.DELETE("/:project_id/skill-tag/:name", handler.DetachSkillTag)

			project.POST("/:project_id/image", handler.UploadImage)
			project.GET("/:project_id/image/:media_id", handler.GetImage)
			project.PUT("/:project_id/image/:media_id/alt", handler.UpdateImageAlt)
			project.DELETE("/:project_id/image/:media_id", handler.DeleteImage)

			project.POST("/:project_id/thumbnail", handler.UploadThumbnail)
			project.PUT("/:project_id/thumbnail/alt", handler.UpdateThumbnailAlt)
			project.DELETE("/:project_id/thumbnail", handler.DeleteThumbnail)
		}
	}
	return r
}
