package handler

import (
	"errors"
	"net/http"

	"github.com/docusage/docusage-be/service"
	"github.com/docusage/docusage-be/types"
	"github.com/gin-gonic/gin"
)

// Starter questions surfaced by the chat UI.
var suggestedQuestions = []string{
	"What is our remote work policy?",
	"How do I request time off?",
	"What are the security guidelines for handling customer data?",
	"Who approves expense reports?",
}

type AskHandler struct {
	answerService *service.AnswerService
}

func NewAskHandler(answerService *service.AnswerService) *AskHandler {
	return &AskHandler{
		answerService: answerService,
	}
}

func (h *AskHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.answerService.Answer(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, types.ErrValidation) {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  "error",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: "Could not get an answer. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   result,
	})
}

func (h *AskHandler) HandleSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   suggestedQuestions,
	})
}
