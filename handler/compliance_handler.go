package handler

import (
	"errors"
	"net/http"

	"github.com/docusage/docusage-be/service"
	"github.com/docusage/docusage-be/types"
	"github.com/gin-gonic/gin"
)

type ComplianceHandler struct {
	complianceService *service.ComplianceService
}

func NewComplianceHandler(complianceService *service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{
		complianceService: complianceService,
	}
}

func (h *ComplianceHandler) HandlePolicyCheck(c *gin.Context) {
	var req types.PolicyCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.complianceService.CheckCompliance(c.Request.Context(), req.DocumentText)
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
			Message: "Could not check the document. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   result,
	})
}
