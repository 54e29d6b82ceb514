package handler

import (
	"errors"
	"net/http"

	"github.com/docusage/docusage-be/database"
	"github.com/docusage/docusage-be/service"
	"github.com/docusage/docusage-be/types"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	store         database.DocumentStore
	ingestService *service.IngestService
}

func NewDocumentHandler(store database.DocumentStore, ingestService *service.IngestService) *DocumentHandler {
	return &DocumentHandler{
		store:         store,
		ingestService: ingestService,
	}
}

func (h *DocumentHandler) HandleList(c *gin.Context) {
	docs, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   docs,
	})
}

func (h *DocumentHandler) HandleGet(c *gin.Context) {
	doc, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  "error",
			Message: "Document not found",
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   doc,
	})
}

func (h *DocumentHandler) HandleSources(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   h.ingestService.Sources(),
	})
}

// HandleIngest always answers 200 with a success boolean; ingestion failures
// are part of the payload, not the transport.
func (h *DocumentHandler) HandleIngest(c *gin.Context) {
	var req types.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	result := h.ingestService.Ingest(c.Request.Context(), req.Source, req.Name, req.Content)
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   result,
	})
}

func (h *DocumentHandler) HandleSeed(c *gin.Context) {
	var req types.SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	if err := h.ingestService.Seed(c.Request.Context(), req.Documents); err != nil {
		if errors.Is(err, types.ErrValidation) {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  "error",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
	})
}
