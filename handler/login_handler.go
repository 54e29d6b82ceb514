package handler

import (
	"net/http"

	"github.com/docusage/docusage-be/types"
	"github.com/docusage/docusage-be/utils"
	"github.com/gin-gonic/gin"
)

type LoginHandler interface {
	HandleLogin(c *gin.Context)
}

type loginHandler struct {
	adminPassword string
}

func NewLoginHandler(adminPassword string) LoginHandler {
	return &loginHandler{
		adminPassword: adminPassword,
	}
}

func (h *loginHandler) HandleLogin(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	if h.adminPassword == "" || req.Password != h.adminPassword {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  "error",
			Message: "Invalid password",
		})
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data: types.LoginResponse{
			AccessToken: token,
		},
	})
}
