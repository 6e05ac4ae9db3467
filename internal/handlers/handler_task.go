package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// taskHandler handles HTTP requests related to tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

// registerTaskRoutes registers all task-related routes.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.GET("/user/:userId", h.listTasksByUser)
		tasks.GET("/status/:status", h.listTasksByStatus)
		tasks.GET("/:id", h.getTask)
		tasks.POST("", h.createTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// listTasks godoc
// @Summary List tasks
// @Description Lists all tasks, or a single project's tasks when project_id is set
// @Tags tasks
// @Produce json
// @Param project_id query int false "Project ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	var (
		tasks []domain.Task
		err   error
	)
	if raw := c.Query("project_id"); raw != "" {
		projectID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || projectID <= 0 {
			c.JSON(http.StatusBadRequest, dto.Fail("invalid project_id parameter"))
			return
		}
		tasks, err = h.taskService.ListTasksByProject(c.Request.Context(), projectID)
	} else {
		tasks, err = h.taskService.ListTasks(c.Request.Context())
	}
	if err != nil {
		respondError(c, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(tasks, len(tasks)))
}

// listTasksByUser godoc
// @Summary List tasks assigned to a user
// @Tags tasks
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /tasks/user/{userId} [get]
func (h *taskHandler) listTasksByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	tasks, err := h.taskService.ListTasksByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(tasks, len(tasks)))
}

// listTasksByStatus godoc
// @Summary List tasks in one lifecycle stage
// @Tags tasks
// @Produce json
// @Param status path string true "Task status"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /tasks/status/{status} [get]
func (h *taskHandler) listTasksByStatus(c *gin.Context) {
	status := domain.TaskStatus(c.Param("status"))
	tasks, err := h.taskService.ListTasksByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(tasks, len(tasks)))
}

// getTask godoc
// @Summary Get a task by ID
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *taskHandler) getTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	task, err := h.taskService.GetTaskByID(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "Failed to retrieve task")
		return
	}
	c.JSON(http.StatusOK, dto.OK(task))
}

// createTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("name, projectId and assignedTo are required"))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, dto.OKMessage("task created", task))
}

// updateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *taskHandler) updateTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, req)
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("task updated", task))
}

// deleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("task deleted", nil))
}
