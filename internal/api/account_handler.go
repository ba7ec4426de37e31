package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/cloud"
	"github.com/om607397-wq/namaa/internal/core"
)

// AccountHandler exposes the sign-in lifecycle.
type AccountHandler struct {
	accounts core.AccountService
	log      *zap.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accounts core.AccountService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, log: log}
}

// Register handles POST /account/register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	id, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warn("registration failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "registration failed", Details: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, SessionResponse{UID: id.UID, Email: id.Email})
}

// SignIn handles POST /account/session.
func (h *AccountHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
		return
	}
	id, err := h.accounts.SignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, cloud.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired identity token"})
			return
		}
		h.log.Warn("sign-in failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "sign-in failed", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{UID: id.UID, Email: id.Email})
}

// SignOut handles DELETE /account/session.
func (h *AccountHandler) SignOut(c *gin.Context) {
	if err := h.accounts.SignOut(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "sign-out failed", Details: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Session handles GET /account/session.
func (h *AccountHandler) Session(c *gin.Context) {
	id, ok := h.accounts.Current()
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no signed-in user"})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{UID: id.UID, Email: id.Email})
}
