package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HTTPSessionInfo struct {
	SessionID uuid.UUID
}

// ExtractSessionInfo reads the session identity the auth middleware stored.
// On failure it writes the 401 itself and reports false.
func ExtractSessionInfo(c *gin.Context) (HTTPSessionInfo, bool) {
	sessionID := c.GetString("sessionID") // From session token middleware
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Session not authenticated"})
		return HTTPSessionInfo{}, false
	}
	sessionUUID, err := uuid.Parse(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unable to parse session id"})
		return HTTPSessionInfo{}, false
	}

	return HTTPSessionInfo{
		SessionID: sessionUUID,
	}, true
}

// ParseIDParam parses the :id path segment as a UUID, writing the 400 itself
// when the segment is malformed.
func ParseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
