package ginserver

import (
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	sessionsapp "villastay/internal/app/handlers/sessions"
	"villastay/internal/app/queries"
)

type SessionHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
}

type createSessionRequest struct {
	Mode string `json:"mode"`
}

func (h SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "bad_request", Message: err.Error()}})
			return
		}
	}
	cmd := sessionsapp.CreateSessionCommand{
		CommandID: generateCommandID(),
		VillaID:   c.Param("id"),
		Mode:      req.Mode,
	}
	result, err := commands.Dispatch[sessionsapp.CreateSessionCommand, dto.Session](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h SessionHandler) Get(c *gin.Context) {
	q := sessionsapp.GetSessionQuery{SessionID: c.Param("id")}
	result, err := queries.Ask[sessionsapp.GetSessionQuery, dto.Session](c.Request.Context(), h.Queries, q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type selectDateRequest struct {
	Date string `json:"date"`
}

func (h SessionHandler) Select(c *gin.Context) {
	var req selectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "bad_request", Message: err.Error()}})
		return
	}
	cmd := sessionsapp.SelectDateCommand{SessionID: c.Param("id"), Date: req.Date}
	result, err := commands.Dispatch[sessionsapp.SelectDateCommand, dto.Session](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type adjustDurationRequest struct {
	Delta int `json:"delta"`
}

func (h SessionHandler) Duration(c *gin.Context) {
	var req adjustDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "bad_request", Message: err.Error()}})
		return
	}
	cmd := sessionsapp.AdjustDurationCommand{SessionID: c.Param("id"), Delta: req.Delta}
	result, err := commands.Dispatch[sessionsapp.AdjustDurationCommand, dto.Session](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type switchModeRequest struct {
	Mode string `json:"mode"`
}

func (h SessionHandler) Mode(c *gin.Context) {
	var req switchModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "bad_request", Message: err.Error()}})
		return
	}
	cmd := sessionsapp.SwitchModeCommand{SessionID: c.Param("id"), Mode: req.Mode}
	result, err := commands.Dispatch[sessionsapp.SwitchModeCommand, dto.Session](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h SessionHandler) Clear(c *gin.Context) {
	cmd := sessionsapp.ClearSelectionCommand{SessionID: c.Param("id")}
	result, err := commands.Dispatch[sessionsapp.ClearSelectionCommand, dto.Session](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h SessionHandler) Confirm(c *gin.Context) {
	cmd := sessionsapp.ConfirmStayCommand{
		SessionID:       c.Param("id"),
		IdempotencyKeyV: c.GetHeader("Idempotency-Key"),
	}
	result, err := commands.Dispatch[sessionsapp.ConfirmStayCommand, *sessionsapp.ConfirmStayResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h SessionHandler) Grid(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "bad_request", Message: "year must be an integer"}})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "bad_request", Message: "month must be an integer"}})
		return
	}
	q := sessionsapp.GetGridQuery{SessionID: c.Param("id"), Year: year, Month: month}
	result, err := queries.Ask[sessionsapp.GetGridQuery, dto.Grid](c.Request.Context(), h.Queries, q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func generateCommandID() string {
	return uuid.NewString()
}

var _ SessionHTTP = SessionHandler{}
