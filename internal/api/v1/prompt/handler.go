package prompt

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"llm-prompt-repository/internal/models"
	"llm-prompt-repository/internal/services"
	"llm-prompt-repository/internal/utils"

	"github.com/gin-gonic/gin"
)

// PromptStore is the record repository the handlers delegate to.
type PromptStore interface {
	CreatePrompt(ctx context.Context, input services.CreatePromptInput) (*models.Prompt, error)
	ListPrompts(ctx context.Context, filter services.PromptFilter) ([]models.Prompt, error)
	GetPromptByID(ctx context.Context, id int64) (*models.Prompt, error)
}

type Handler struct {
	store PromptStore
}

func NewHandler(store PromptStore) *Handler {
	return &Handler{store: store}
}

// CreatePrompt godoc
// @Summary Create a prompt
// @Description Store a new prompt record
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body CreatePromptRequest true "Create Prompt Request"
// @Success 201 {object} models.Prompt
// @Failure 422 {object} utils.Response{data=utils.ValidationErrorData}
// @Failure 500 {object} utils.Response
// @Router /api/prompts [post]
func (h *Handler) CreatePrompt(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prompt, err := h.store.CreatePrompt(c.Request.Context(), req.toInput())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create prompt"))
		return
	}

	c.JSON(http.StatusCreated, prompt)
}

// ListPrompts godoc
// @Summary List prompts
// @Description List prompts in insertion order, optionally filtered
// @Tags prompts
// @Produce json
// @Param q query string false "Case-sensitive title substring"
// @Param purpose query string false "Exact purpose"
// @Success 200 {array} models.Prompt
// @Failure 500 {object} utils.Response
// @Router /api/prompts [get]
func (h *Handler) ListPrompts(c *gin.Context) {
	var query ListPromptsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusUnprocessableEntity, utils.NewErrorResponse(http.StatusUnprocessableEntity, err.Error()))
		return
	}

	prompts, err := h.store.ListPrompts(c.Request.Context(), services.PromptFilter{
		Query:   query.Q,
		Purpose: query.Purpose,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list prompts"))
		return
	}

	c.JSON(http.StatusOK, prompts)
}

// GetPrompt godoc
// @Summary Get a prompt
// @Description Get a prompt by id
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} models.Prompt
// @Failure 404 {object} utils.Response
// @Failure 422 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/prompts/{id} [get]
func (h *Handler) GetPrompt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, utils.NewErrorResponse(http.StatusUnprocessableEntity, "Invalid ID"))
		return
	}

	prompt, err := h.store.GetPromptByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to get prompt"))
		return
	}

	c.JSON(http.StatusOK, prompt)
}
