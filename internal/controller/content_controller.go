package controller

import (
	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/service"
	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// Menu godoc
// @Summary Course navigation tree
// @Tags content
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ContentTopic} "Success"
// @Router /content/menu [get]
func (c *ContentController) Menu(ctx *gin.Context) {
	util.Success(ctx, "Successfully retrieved the course menu", c.ContentService.Menu())
}

// Section godoc
// @Summary Page body for a sub-topic
// @Description Returns the content blocks for a sub-topic title under a course level. Titles without registered content return heading-only.
// @Tags content
// @Produce  json
// @Security ApiKeyAuth
// @Param   level path string true "foundation, beginner, intermediate or advance"
// @Param   title query string true "Sub-topic title"
// @Success 200 {object} util.Response{data=model.ContentSection} "Success"
// @Failure 404 {object} util.Response "Unknown level"
// @Router /content/{level} [get]
func (c *ContentController) Section(ctx *gin.Context) {
	section, err := c.ContentService.Section(model.Level(ctx.Param("level")), ctx.Query("title"))
	if err != nil {
		util.NotFound(ctx, "Topic not found")
		return
	}

	util.Success(ctx, "Successfully retrieved the section", section)
}
