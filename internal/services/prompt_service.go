package services

import (
	"context"
	"errors"
	"time"

	"llm-prompt-repository/internal/models"
	"llm-prompt-repository/pkg/metrics"

	"gorm.io/gorm"
)

// ErrPromptNotFound is returned when no prompt has the requested id.
var ErrPromptNotFound = errors.New("prompt not found")

// CreatePromptInput holds the caller-supplied fields of a new prompt.
type CreatePromptInput struct {
	Title      string
	PromptText string
	Purpose    string
	Tags       []string
	Source     *string
}

// PromptFilter narrows ListPrompts. Empty fields do not filter.
type PromptFilter struct {
	// Query matches prompts whose title contains it (case-sensitive).
	Query string
	// Purpose matches prompts whose purpose equals it exactly.
	Purpose string
}

// PromptService reads and appends prompt records.
type PromptService struct {
	db *gorm.DB
}

func NewPromptService(db *gorm.DB) *PromptService {
	return &PromptService{db: db}
}

// CreatePrompt inserts a new prompt and returns the stored record
func (s *PromptService) CreatePrompt(ctx context.Context, input CreatePromptInput) (*models.Prompt, error) {
	prompt := &models.Prompt{
		Title:      input.Title,
		PromptText: input.PromptText,
		Purpose:    input.Purpose,
		Tags:       models.Tags(input.Tags),
		Source:     input.Source,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(prompt).Error; err != nil {
		return nil, err
	}
	metrics.RecordPromptCreated()

	return s.GetPromptByID(ctx, prompt.ID)
}

// ListPrompts returns the prompts matching filter in insertion order
func (s *PromptService) ListPrompts(ctx context.Context, filter PromptFilter) ([]models.Prompt, error) {
	db := s.db.WithContext(ctx).Model(&models.Prompt{})

	if filter.Query != "" {
		// instr is case-sensitive, unlike LIKE.
		db = db.Where("instr(title, ?) > 0", filter.Query)
	}
	if filter.Purpose != "" {
		db = db.Where("purpose = ?", filter.Purpose)
	}

	prompts := make([]models.Prompt, 0)
	if err := db.Order("id asc").Find(&prompts).Error; err != nil {
		return nil, err
	}

	return prompts, nil
}

// GetPromptByID retrieves a prompt by id
func (s *PromptService) GetPromptByID(ctx context.Context, id int64) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := s.db.WithContext(ctx).First(&prompt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	return &prompt, nil
}

// CountPrompts returns the number of stored prompts
func (s *PromptService) CountPrompts(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Prompt{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
