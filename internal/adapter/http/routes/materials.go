package routes

import (
	"orcafacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMaterials = "/materials"
)

func addMaterialRoutes(rg *gin.RouterGroup, materialHandler *handlers.MaterialHandler) {
	materials := rg.Group(PathMaterials)
	{
		materials.POST("", materialHandler.CreateMaterial)
		materials.GET("", materialHandler.ListMaterials)
		materials.PATCH("/:id", materialHandler.PatchMaterial)
		materials.DELETE("/:id", materialHandler.DeleteMaterial)
	}
}
