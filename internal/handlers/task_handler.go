package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/domains/calendarsync"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService task.TaskService
	syncService calendarsync.SyncService
	logger      *Logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService task.TaskService, syncService calendarsync.SyncService, logger *Logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		syncService: syncService,
		logger:      logger,
	}
}

// CreateTask handles task creation
// @Summary Create a new task
// @Description Create a new task
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body task.CreateTaskRequest true "Task creation data"
// @Success 201 {object} CreateTaskResponse "Task created successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req task.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	taskResponse, err := h.taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrInvalidTaskData):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task data"})
		default:
			h.logger.Errorf("create task error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, CreateTaskResponse{
		Message: "Task created successfully",
		Task:    *taskResponse,
	})
}

// GetTask handles getting a specific task
// @Summary Get task by ID
// @Description Get a specific task by ID
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} TaskDetailResponse "Task data"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	taskResponse, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		switch err {
		case task.ErrTaskNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
		default:
			h.logger.Errorf("get task error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, TaskDetailResponse{Task: *taskResponse})
}

// UpdateTask handles updating a task
// @Summary Update task
// @Description Update a specific task
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body task.UpdateTaskRequest true "Task update data"
// @Success 200 {object} UpdateTaskResponse "Task updated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req task.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	taskResponse, err := h.taskService.UpdateTask(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
		case errors.Is(err, task.ErrInvalidTaskData):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task data"})
		default:
			h.logger.Errorf("update task error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateTaskResponse{
		Message: "Task updated successfully",
		Task:    *taskResponse,
	})
}

// CompleteTask handles marking a task as completed
// @Summary Complete task
// @Description Mark a specific task as completed
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} UpdateTaskResponse "Task completed successfully"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks/{id}/complete [post]
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	taskResponse, err := h.taskService.CompleteTask(c.Request.Context(), id)
	if err != nil {
		switch err {
		case task.ErrTaskNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
		default:
			h.logger.Errorf("complete task error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateTaskResponse{
		Message: "Task completed successfully",
		Task:    *taskResponse,
	})
}

// DeleteTask handles task deletion
// @Summary Delete task
// @Description Delete a specific task
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} SuccessResponse "Task deleted successfully"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		switch err {
		case task.ErrTaskNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
		default:
			h.logger.Errorf("delete task error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Task deleted successfully"})
}

// ListTasks handles listing tasks with filtering
// @Summary List tasks
// @Description List tasks with optional status, priority and category filters
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, in_progress, completed)"
// @Param priority query string false "Filter by priority (low, medium, high, urgent)"
// @Param category query string false "Filter by category"
// @Param offset query int false "Number of tasks to skip" default(0)
// @Param limit query int false "Number of tasks to return" default(20)
// @Success 200 {object} ListTasksResponse "List of tasks with pagination"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var filters task.ListTasksRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	// Set default limits
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	tasks, total, err := h.taskService.ListTasks(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, task.ErrInvalidTaskData) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid query parameters",
				Details: err.Error(),
			})
			return
		}
		h.logger.Errorf("list tasks error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListTasksResponse{
		Tasks: tasks,
		Pagination: PaginationInfo{
			Total:  total,
			Offset: filters.Offset,
			Limit:  filters.Limit,
		},
	})
}

// GetTaskStats handles task statistics
// @Summary Get task statistics
// @Description Get task counts by status and priority plus the overdue count
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TaskStatsResponse "Task statistics"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks/stats [get]
func (h *TaskHandler) GetTaskStats(c *gin.Context) {
	stats, err := h.taskService.Stats(c.Request.Context())
	if err != nil {
		h.logger.Errorf("task stats error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, TaskStatsResponse{Stats: stats})
}

// SyncTask handles mirroring a task to Google Calendar
// @Summary Sync task to Google Calendar
// @Description Mirror a specific task to Google Calendar. Already-mirrored tasks succeed without a second insert.
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} SyncedTaskResponse "Task synced successfully"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 503 {object} ErrorResponse "Google Calendar is not linked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks/{id}/sync [post]
func (h *TaskHandler) SyncTask(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	taskResponse, err := h.syncService.SyncTask(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, calendarsync.ErrNotLinked):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: calendarsync.ErrNotLinked.Error()})
		case errors.Is(err, task.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
		default:
			h.logger.Errorf("sync task error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Calendar sync failed",
				Details: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, SyncedTaskResponse{
		Message: "Task synced to Google Calendar",
		Task:    *taskResponse,
	})
}

// RegisterTaskRoutes registers all task-related routes
func (h *TaskHandler) RegisterTaskRoutes(r *gin.RouterGroup, sessionService session.SessionService) {
	protected := r.Group("/tasks")
	protected.Use(AuthMiddleware(sessionService, h.logger))
	{
		protected.POST("", h.CreateTask)
		protected.GET("", h.ListTasks)
		protected.GET("/stats", h.GetTaskStats)
		protected.GET("/:id", h.GetTask)
		protected.PUT("/:id", h.UpdateTask)
		protected.DELETE("/:id", h.DeleteTask)
		protected.POST("/:id/complete", h.CompleteTask)
		protected.POST("/:id/sync", h.SyncTask)
	}
}
