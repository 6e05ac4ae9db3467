package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

// registerProjectRoutes registers all project-related routes.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/user/:userId", h.listProjectsByUser)
		projects.GET("/status/:status", h.listProjectsByStatus)
		projects.GET("/:id", h.getProject)
		projects.POST("", h.createProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
	}
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(projects, len(projects)))
}

// listProjectsByUser godoc
// @Summary List projects created by a user
// @Tags projects
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /projects/user/{userId} [get]
func (h *projectHandler) listProjectsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	projects, err := h.projectService.ListProjectsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(projects, len(projects)))
}

// listProjectsByStatus godoc
// @Summary List projects in one lifecycle stage
// @Tags projects
// @Produce json
// @Param status path string true "Project status"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /projects/status/{status} [get]
func (h *projectHandler) listProjectsByStatus(c *gin.Context) {
	status := domain.ProjectStatus(c.Param("status"))
	projects, err := h.projectService.ListProjectsByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(projects, len(projects)))
}

// getProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, "Failed to retrieve project")
		return
	}
	c.JSON(http.StatusOK, dto.OK(project))
}

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("name and createdBy are required"))
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, dto.OKMessage("project created", project))
}

// updateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req)
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("project updated", project))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Removes a project; its tasks are removed with it
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("project deleted", nil))
}
