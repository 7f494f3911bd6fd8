package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle"
	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/gorilla/websocket"
)

// MaxImportSize bounds uploaded snapshot documents
const MaxImportSize = 4 << 20

// Config holds configuration for the HTTP handler
type Config struct {
	RaffleService    raffle.Service
	MessagingService messaging.Service

	// Hub serves the websocket stream, a new hub is created when nil
	Hub *Hub

	// CheckOrigin for websocket upgrades, same-origin only when nil
	CheckOrigin func(r *http.Request) bool
}

// Handler serves the raffle HTTP API
type Handler struct {
	raffleService    raffle.Service
	messagingService messaging.Service
	hub              *Hub
	upgrader         websocket.Upgrader
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RaffleService == nil {
		return nil, errors.New("raffle service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	hub := cfg.Hub
	if hub == nil {
		hub = NewHub(nil)
	}

	return &Handler{
		raffleService:    cfg.RaffleService,
		messagingService: cfg.MessagingService,
		hub:              hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}, nil
}

// RegisterRoutes registers all the raffle routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/raffles", h.ListRaffles)

	r := router.Group("/raffles/:id")

	r.GET("", h.GetState)
	r.DELETE("", h.Reset)

	r.POST("/prizes", h.AddPrize)
	r.POST("/prizes/:prizeId/increment", h.IncrementPrize)
	r.POST("/prizes/:prizeId/decrement", h.DecrementPrize)
	r.DELETE("/prizes/:prizeId", h.RemovePrize)

	r.POST("/participants", h.AddParticipant)
	r.POST("/participants/bulk", h.AddParticipantsBulk)
	r.GET("/participants/next", h.NextParticipant)
	r.POST("/participants/:participantId/toggle", h.ToggleParticipant)
	r.DELETE("/participants/:participantId", h.RemoveParticipant)

	r.PUT("/options", h.SetOptions)
	r.POST("/spin", h.Spin)

	r.GET("/history", h.GetHistory)
	r.DELETE("/history", h.ClearHistory)

	r.GET("/export", h.Export)
	r.POST("/import", h.Import)

	r.GET("/ws", h.Stream)
}

// writeError turns err into a JSON error response
func (h *Handler) writeError(c *gin.Context, err error, name string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}

	output, msgErr := h.messagingService.GetAdvisoryMessage(c.Request.Context(), &messaging.GetAdvisoryMessageInput{
		Err:  err,
		Name: name,
	})
	if msgErr != nil {
		c.JSON(status, gin.H{"message": err.Error(), "warn": raffle.IsAdvisory(err)})
		return
	}

	c.JSON(status, gin.H{"message": output.Message, "warn": output.Warn})
}

func statusFor(err error) int {
	var re raffle.RaffleError
	if !errors.As(err, &re) || !raffle.IsAdvisory(re) {
		return http.StatusInternalServerError
	}

	switch re {
	case raffle.ErrPrizeNotFound, raffle.ErrParticipantNotFound:
		return http.StatusNotFound
	case raffle.ErrNoStock, raffle.ErrNoActiveParticipant, raffle.ErrSpinInProgress, raffle.ErrDuplicateParticipant:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// actionMessage returns the confirmation text of an action, empty on failure
func (h *Handler) actionMessage(c *gin.Context, input *messaging.GetActionMessageInput) string {
	output, err := h.messagingService.GetActionMessage(c.Request.Context(), input)
	if err != nil {
		logger.Warningf("No message for action %s: %v", input.Action, err)
		return ""
	}
	return output.Message
}

// GetState handles reading a raffle
func (h *Handler) GetState(c *gin.Context) {
	output, err := h.raffleService.GetState(c.Request.Context(), &raffle.GetStateInput{
		RaffleID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":      output.State,
		"spinning":   output.Spinning,
		"wheelAngle": output.WheelAngle,
	})
}

// ListRaffles handles listing every stored raffle
func (h *Handler) ListRaffles(c *gin.Context) {
	output, err := h.raffleService.ListRaffles(c.Request.Context(), &raffle.ListRafflesInput{})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	ids := output.RaffleIDs
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"raffles": ids})
}

// Reset handles erasing a raffle
func (h *Handler) Reset(c *gin.Context) {
	_, err := h.raffleService.Reset(c.Request.Context(), &raffle.ResetInput{
		RaffleID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": h.actionMessage(c, &messaging.GetActionMessageInput{Action: messaging.ActionReset}),
	})
}

type addPrizeRequest struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// AddPrize handles adding stock of a prize
func (h *Handler) AddPrize(c *gin.Context) {
	var req addPrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, raffle.ErrInvalidPrize, "")
		return
	}

	output, err := h.raffleService.AddPrize(c.Request.Context(), &raffle.AddPrizeInput{
		RaffleID: c.Param("id"),
		Name:     req.Name,
		Qty:      req.Qty,
	})
	if err != nil {
		h.writeError(c, err, req.Name)
		return
	}

	action := messaging.ActionPrizeAdded
	if output.Merged {
		action = messaging.ActionPrizeMerged
	}

	c.JSON(http.StatusOK, gin.H{
		"prize":   output.Prize,
		"merged":  output.Merged,
		"message": h.actionMessage(c, &messaging.GetActionMessageInput{Action: action, Name: output.Prize.Name, Count: req.Qty}),
	})
}

func (h *Handler) prizeInput(c *gin.Context) *raffle.PrizeInput {
	return &raffle.PrizeInput{
		RaffleID: c.Param("id"),
		PrizeID:  c.Param("prizeId"),
	}
}

// IncrementPrize handles granting one more unit of a prize
func (h *Handler) IncrementPrize(c *gin.Context) {
	h.prizeAction(c, h.raffleService.IncrementPrize)
}

// DecrementPrize handles taking one unit of a prize away
func (h *Handler) DecrementPrize(c *gin.Context) {
	h.prizeAction(c, h.raffleService.DecrementPrize)
}

// RemovePrize handles deleting a prize
func (h *Handler) RemovePrize(c *gin.Context) {
	h.prizeAction(c, h.raffleService.RemovePrize)
}

func (h *Handler) prizeAction(c *gin.Context, action func(ctx context.Context, input *raffle.PrizeInput) (*raffle.PrizeOutput, error)) {
	output, err := action(c.Request.Context(), h.prizeInput(c))
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prize": output.Prize,
	})
}

type addParticipantRequest struct {
	Name string `json:"name"`
}

// AddParticipant handles adding a participant
func (h *Handler) AddParticipant(c *gin.Context) {
	var req addParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, raffle.ErrInvalidParticipant, "")
		return
	}

	output, err := h.raffleService.AddParticipant(c.Request.Context(), &raffle.AddParticipantInput{
		RaffleID: c.Param("id"),
		Name:     req.Name,
	})
	if err != nil {
		h.writeError(c, err, req.Name)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"participant": output.Participant,
		"message":     h.actionMessage(c, &messaging.GetActionMessageInput{Action: messaging.ActionParticipantAdded, Name: output.Participant.Name}),
	})
}

type bulkRequest struct {
	Text string `json:"text"`
}

// AddParticipantsBulk handles adding one participant per line. The body is
// either JSON {"text": ...} or plain text.
func (h *Handler) AddParticipantsBulk(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxImportSize))
	if err != nil {
		h.writeError(c, raffle.ErrInvalidParticipant, "")
		return
	}

	text := string(body)
	if c.ContentType() == gin.MIMEJSON {
		var req bulkRequest
		if err := json.Unmarshal(body, &req); err != nil {
			h.writeError(c, raffle.ErrInvalidParticipant, "")
			return
		}
		text = req.Text
	}

	output, err := h.raffleService.AddParticipantsBulk(c.Request.Context(), &raffle.AddParticipantsBulkInput{
		RaffleID: c.Param("id"),
		Text:     text,
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"added":   output.Added,
		"skipped": output.Skipped,
		"message": h.actionMessage(c, &messaging.GetActionMessageInput{
			Action:  messaging.ActionBulkAdded,
			Count:   len(output.Added),
			Skipped: output.Skipped,
		}),
	})
}

func (h *Handler) participantInput(c *gin.Context) *raffle.ParticipantInput {
	return &raffle.ParticipantInput{
		RaffleID:      c.Param("id"),
		ParticipantID: c.Param("participantId"),
	}
}

// ToggleParticipant handles flipping whether a participant is active
func (h *Handler) ToggleParticipant(c *gin.Context) {
	h.participantAction(c, h.raffleService.ToggleParticipant)
}

// RemoveParticipant handles deleting a participant
func (h *Handler) RemoveParticipant(c *gin.Context) {
	h.participantAction(c, h.raffleService.RemoveParticipant)
}

func (h *Handler) participantAction(c *gin.Context, action func(ctx context.Context, input *raffle.ParticipantInput) (*raffle.ParticipantOutput, error)) {
	output, err := action(c.Request.Context(), h.participantInput(c))
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"participant": output.Participant,
	})
}

// NextParticipant handles skipping to the next active participant
func (h *Handler) NextParticipant(c *gin.Context) {
	output, err := h.raffleService.NextParticipant(c.Request.Context(), &raffle.NextParticipantInput{
		RaffleID: c.Param("id"),
		AfterID:  c.Query("after"),
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"participant": output.Participant,
	})
}

type optionsRequest struct {
	UniqueWinner    *bool `json:"uniqueWinner"`
	NoRepeatPrize   *bool `json:"noRepeatPrize"`
	WeightedByStock *bool `json:"weightedByStock"`
}

// SetOptions handles updating the spin options
func (h *Handler) SetOptions(c *gin.Context) {
	var req optionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid options.", "warn": true})
		return
	}

	output, err := h.raffleService.SetOptions(c.Request.Context(), &raffle.SetOptionsInput{
		RaffleID:        c.Param("id"),
		UniqueWinner:    req.UniqueWinner,
		NoRepeatPrize:   req.NoRepeatPrize,
		WeightedByStock: req.WeightedByStock,
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"options": output.Options,
	})
}

type spinRequest struct {
	ParticipantID string `json:"participantId"`
}

// Spin handles a spin. The response is written once the wheel is back at rest.
func (h *Handler) Spin(c *gin.Context) {
	var req spinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, raffle.ErrNoActiveParticipant, "")
		return
	}

	output, err := h.raffleService.Spin(c.Request.Context(), &raffle.SpinInput{
		RaffleID:      c.Param("id"),
		ParticipantID: req.ParticipantID,
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	response := gin.H{
		"prize":        output.Prize,
		"participant":  output.Participant,
		"entry":        output.Entry,
		"prizeIndex":   output.PrizeIndex,
		"slices":       output.Slices,
		"landingAngle": output.LandingAngle,
	}

	msg, err := h.messagingService.GetWinMessage(c.Request.Context(), &messaging.GetWinMessageInput{
		ParticipantName: output.Participant.Name,
		PrizeName:       output.Prize.Name,
		Remaining:       output.Prize.Remaining,
	})
	if err != nil {
		logger.Warningf("No win message for raffle %s: %v", c.Param("id"), err)
	} else {
		response["title"] = msg.Title
		response["message"] = msg.Message
	}

	c.JSON(http.StatusOK, response)
}

// GetHistory handles listing the most recent awards
func (h *Handler) GetHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Invalid limit %q.", raw), "warn": true})
			return
		}
	}

	output, err := h.raffleService.GetHistory(c.Request.Context(), &raffle.GetHistoryInput{
		RaffleID: c.Param("id"),
		Limit:    limit,
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": output.Entries,
		"total":   output.Total,
	})
}

// ClearHistory handles clearing the history and every participant's wins
func (h *Handler) ClearHistory(c *gin.Context) {
	output, err := h.raffleService.ClearHistory(c.Request.Context(), &raffle.ClearHistoryInput{
		RaffleID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":   output.State,
		"message": h.actionMessage(c, &messaging.GetActionMessageInput{Action: messaging.ActionHistoryCleared}),
	})
}

// Export handles downloading the raffle snapshot
func (h *Handler) Export(c *gin.Context) {
	output, err := h.raffleService.Export(c.Request.Context(), &raffle.ExportInput{
		RaffleID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, gin.MIMEJSON, output.Data)
}

// Import handles uploading a snapshot, either as the multipart field "file"
// or as the raw request body
func (h *Handler) Import(c *gin.Context) {
	data, err := h.readImport(c)
	if err != nil {
		logger.Warningf("Could not read import for raffle %s: %v", c.Param("id"), err)
		h.writeError(c, raffle.ErrMalformedImport, "")
		return
	}

	output, err := h.raffleService.Import(c.Request.Context(), &raffle.ImportInput{
		RaffleID: c.Param("id"),
		Data:     data,
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":   output.State,
		"message": h.actionMessage(c, &messaging.GetActionMessageInput{Action: messaging.ActionImported}),
	})
}

func (h *Handler) readImport(c *gin.Context) ([]byte, error) {
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		header, err := c.FormFile("file")
		if err != nil {
			return nil, err
		}
		if header.Size > MaxImportSize {
			return nil, fmt.Errorf("file of %d bytes is too large", header.Size)
		}

		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return io.ReadAll(file)
	}

	return io.ReadAll(io.LimitReader(c.Request.Body, MaxImportSize))
}

// Stream upgrades to a websocket streaming the raffle's states and frames.
// The current state is sent first.
func (h *Handler) Stream(c *gin.Context) {
	raffleID := c.Param("id")

	output, err := h.raffleService.GetState(c.Request.Context(), &raffle.GetStateInput{
		RaffleID: raffleID,
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	initial, err := json.Marshal(&Message{
		Type:     MessageTypeState,
		RaffleID: raffleID,
		State:    output.State,
	})
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warningf("Websocket upgrade for raffle %s failed: %v", raffleID, err)
		return
	}

	h.hub.ServeConn(conn, raffleID, initial)
}
