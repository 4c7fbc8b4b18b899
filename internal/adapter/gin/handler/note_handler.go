package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notes-service/internal/adapter/gin/middleware"
	"notes-service/internal/usecase/note"
)

// NoteHandler handles HTTP requests for note operations. Every route it
// serves sits behind the access gate.
type NoteHandler struct {
	uc  note.Usecase
	log *zap.Logger
}

// NewNoteHandler creates a new NoteHandler instance
func NewNoteHandler(uc note.Usecase, log *zap.Logger) *NoteHandler {
	return &NoteHandler{
		uc:  uc,
		log: log,
	}
}

// CreateNoteRequest represents the HTTP request body for creating a note
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest represents the HTTP request body for a partial update.
// Pointers distinguish omitted fields from supplied ones.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteResponse represents the HTTP response for note data
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse represents a confirmation message body
type MessageResponse struct {
	Message string `json:"message"`
}

func toResponse(n *note.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		OwnerID:   n.OwnerID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// identity extracts the caller's user id attached by the access gate.
func (h *NoteHandler) identity(c *gin.Context) (int64, bool) {
	userID, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	return userID, ok
}

// noteID parses the :id path parameter. Malformed ids are indistinguishable
// from missing notes: both are 404.
func (h *NoteHandler) noteID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Debug("malformed note id", zap.String("id", idStr))
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "note not found",
		})
		return 0, false
	}
	return id, true
}

// List handles GET /api/notes
func (h *NoteHandler) List(c *gin.Context) {
	userID, ok := h.identity(c)
	if !ok {
		return
	}

	resp, err := h.uc.List(c.Request.Context(), note.ListNotesRequest{OwnerID: userID})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	notes := make([]NoteResponse, len(resp.Notes))
	for i := range resp.Notes {
		notes[i] = toResponse(&resp.Notes[i])
	}

	c.JSON(http.StatusOK, notes)
}

// Create handles POST /api/notes
func (h *NoteHandler) Create(c *gin.Context) {
	userID, ok := h.identity(c)
	if !ok {
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create note request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := h.uc.Create(c.Request.Context(), note.CreateNoteRequest{
		OwnerID: userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(resp))
}

// Get handles GET /api/notes/:id
func (h *NoteHandler) Get(c *gin.Context) {
	userID, ok := h.identity(c)
	if !ok {
		return
	}
	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetByID(c.Request.Context(), note.GetNoteRequest{
		OwnerID: userID,
		NoteID:  noteID,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(resp))
}

// Update handles PUT /api/notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	userID, ok := h.identity(c)
	if !ok {
		return
	}
	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	// An absent body is an empty update, leaving the note unchanged
	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("invalid update note request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := h.uc.Update(c.Request.Context(), note.UpdateNoteRequest{
		OwnerID: userID,
		NoteID:  noteID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(resp))
}

// Delete handles DELETE /api/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, ok := h.identity(c)
	if !ok {
		return
	}
	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	_, err := h.uc.Delete(c.Request.Context(), note.DeleteNoteRequest{
		OwnerID: userID,
		NoteID:  noteID,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "note removed"})
}
