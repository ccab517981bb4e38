package prompt

import "llm-prompt-repository/internal/services"

type CreatePromptRequest struct {
	Title      string   `json:"title" binding:"required" example:"ClickBaitTitle"`
	PromptText string   `json:"prompt_text" binding:"required" example:"Rewrite the given text as a clickbait-style headline."`
	Purpose    string   `json:"purpose" binding:"required" example:"Text rewriting"`
	Tags       []string `json:"tags" example:"headline,rewriting"`
	Source     *string  `json:"source" example:"https://resources.wolframcloud.com/PromptRepository/"`
}

func (r CreatePromptRequest) toInput() services.CreatePromptInput {
	return services.CreatePromptInput{
		Title:      r.Title,
		PromptText: r.PromptText,
		Purpose:    r.Purpose,
		Tags:       r.Tags,
		Source:     r.Source,
	}
}

type ListPromptsQuery struct {
	Q       string `form:"q"`
	Purpose string `form:"purpose"`
}
