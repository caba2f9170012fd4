package controller

import (
	"github.com/gin-gonic/gin"

	"learnpath_backend/internal/curriculum"
	"learnpath_backend/internal/util"
)

// CourseController serves the static curriculum graph. No storage behind
// it; the node list is compiled in.
type CourseController struct{}

func NewCourseController() *CourseController {
	return &CourseController{}
}

// List godoc
// @Summary Full curriculum graph
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]curriculum.Node}
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	util.Success(ctx, curriculum.Nodes())
}

// Get godoc
// @Summary One curriculum node
// @Tags courses
// @Produce json
// @Param id path string true "Node id"
// @Success 200 {object} util.Response{data=curriculum.Node}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	node, ok := curriculum.Find(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, node)
}
