package closing

import (
	"github.com/gin-gonic/gin"

	common "kasira.com/kasira/backoffice/web/common"
	"kasira.com/kasira/core"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}}
	r.POST("/closings/search", endpoint.Search)
	r.GET("/closings/:id", endpoint.Get)
	r.POST("/closings/chart", endpoint.Chart)
	r.POST("/closings/export", endpoint.Export)
	r.POST("/closings/:id/attachments", endpoint.RecordAttachment)
}
