package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/domains/command"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// CommandHandler handles custom command HTTP requests
type CommandHandler struct {
	commandService command.CommandService
	logger         *Logger.Logger
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(commandService command.CommandService, logger *Logger.Logger) *CommandHandler {
	return &CommandHandler{
		commandService: commandService,
		logger:         logger,
	}
}

// ListCommands handles listing all commands
// @Summary List commands
// @Description List every stored command, enabled or not
// @Tags Commands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListCommandsResponse "List of commands"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /commands [get]
func (h *CommandHandler) ListCommands(c *gin.Context) {
	commands, err := h.commandService.ListCommands(c.Request.Context())
	if err != nil {
		h.logger.Errorf("list commands error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListCommandsResponse{Commands: commands})
}

// GetCommand handles getting a specific command
// @Summary Get command by name
// @Description Get a specific command by name
// @Tags Commands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Command name"
// @Success 200 {object} CommandDetailResponse "Command data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Command not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /commands/{name} [get]
func (h *CommandHandler) GetCommand(c *gin.Context) {
	resp, err := h.commandService.GetCommand(c.Request.Context(), c.Param("name"))
	if err != nil {
		switch err {
		case command.ErrCommandNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Command not found"})
		default:
			h.logger.Errorf("get command error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, CommandDetailResponse{Command: *resp})
}

// CreateCommand handles command creation
// @Summary Create a new command
// @Description Create a new command with its prompt template
// @Tags Commands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body command.CreateCommandRequest true "Command creation data"
// @Success 201 {object} CommandCreatedResponse "Command created successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /commands [post]
func (h *CommandHandler) CreateCommand(c *gin.Context) {
	var req command.CreateCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.commandService.CreateCommand(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, command.ErrInvalidCommandData):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid command data"})
		default:
			h.logger.Errorf("create command error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, CommandCreatedResponse{
		Message: "Command created successfully",
		Command: *resp,
	})
}

// UpdateCommand handles updating a command
// @Summary Update command
// @Description Update a specific command
// @Tags Commands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Command name"
// @Param request body command.UpdateCommandRequest true "Command update data"
// @Success 200 {object} CommandUpdatedResponse "Command updated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Command not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /commands/{name} [put]
func (h *CommandHandler) UpdateCommand(c *gin.Context) {
	var req command.UpdateCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.commandService.UpdateCommand(c.Request.Context(), c.Param("name"), req)
	if err != nil {
		switch {
		case errors.Is(err, command.ErrCommandNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Command not found"})
		case errors.Is(err, command.ErrInvalidCommandData):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid command data"})
		default:
			h.logger.Errorf("update command error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, CommandUpdatedResponse{
		Message: "Command updated successfully",
		Command: *resp,
	})
}

// DeleteCommand handles command deletion
// @Summary Delete command
// @Description Delete a specific command
// @Tags Commands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Command name"
// @Success 200 {object} SuccessResponse "Command deleted successfully"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Command not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /commands/{name} [delete]
func (h *CommandHandler) DeleteCommand(c *gin.Context) {
	if err := h.commandService.DeleteCommand(c.Request.Context(), c.Param("name")); err != nil {
		switch err {
		case command.ErrCommandNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Command not found"})
		default:
			h.logger.Errorf("delete command error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Command deleted successfully"})
}

// ExecuteCommand handles running a command over a piece of text
// @Summary Execute command
// @Description Substitute the text into the command prompt and run it through the configured text generator
// @Tags Commands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Command name"
// @Param request body command.ExecuteCommandRequest true "Text to run the command over"
// @Success 200 {object} command.ExecuteResponse "Command result"
// @Failure 400 {object} ErrorResponse "Invalid request data or command disabled"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Command not found"
// @Failure 503 {object} ErrorResponse "No text generator configured"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /commands/{name}/execute [post]
func (h *CommandHandler) ExecuteCommand(c *gin.Context) {
	var req command.ExecuteCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.commandService.Execute(c.Request.Context(), c.Param("name"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, command.ErrCommandNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Command not found"})
		case errors.Is(err, command.ErrCommandDisabled):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Command is disabled"})
		case errors.Is(err, command.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: command.ErrNotConfigured.Error()})
		default:
			h.logger.Errorf("execute command error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Command execution failed",
				Details: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterCommandRoutes registers all command-related routes
func (h *CommandHandler) RegisterCommandRoutes(r *gin.RouterGroup, sessionService session.SessionService) {
	protected := r.Group("/commands")
	protected.Use(AuthMiddleware(sessionService, h.logger))
	{
		protected.GET("", h.ListCommands)
		protected.POST("", h.CreateCommand)
		protected.GET("/:name", h.GetCommand)
		protected.PUT("/:name", h.UpdateCommand)
		protected.DELETE("/:name", h.DeleteCommand)
		protected.POST("/:name/execute", h.ExecuteCommand)
	}
}
