package user

import (
	"errors"
	"net/http"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes setup and auth endpoints.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	setup := rg.Group("/setup")
	setup.GET("/status", h.setupStatus)
	setup.POST("/create", h.setup)

	auth := rg.Group("/auth")
	auth.POST("/signup", h.signup)
	auth.POST("/signin", h.signin)
	auth.POST("/forgot-password", h.forgotPassword)
	auth.POST("/reset-password", h.resetPassword)
	auth.GET("/me", authMW, h.me)
	auth.POST("/change-password", authMW, h.changePassword)
}

func (h *Handler) setupStatus(c *gin.Context) {
	done, err := h.svc.SetupDone()
	if err != nil {
		h.log.Error("setup status", zap.Error(err))
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "needsSetup": !done})
}

func (h *Handler) setup(c *gin.Context) {
	var dto CreateAccountDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := dto.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Setup(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errSetupDone):
			response.Forbidden(c, "Setup already completed")
		case errors.Is(err, errEmailTaken):
			response.BadRequest(c, "Email already registered")
		default:
			h.log.Error("setup", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": publicUser(u)})
}

func (h *Handler) signup(c *gin.Context) {
	var dto CreateAccountDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := dto.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			response.BadRequest(c, "Email already registered")
			return
		}
		h.log.Error("signup", zap.Error(err))
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": publicUser(u)})
}

func (h *Handler) signin(c *gin.Context) {
	var dto SignInDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, u, err := h.svc.SignIn(&dto)
	if err != nil {
		if errors.Is(err, errBadCredentials) {
			response.Unauthorized(c)
			return
		}
		h.log.Error("signin", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"token": token, "user": publicUser(u)})
}

func (h *Handler) me(c *gin.Context) {
	response.OK(c, gin.H{
		"id":    middleware.CurrentUserID(c),
		"email": c.GetString(middleware.ContextKeyEmail),
	})
}

func (h *Handler) changePassword(c *gin.Context) {
	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.svc.ChangePassword(middleware.CurrentUserID(c), &dto)
	if err != nil {
		switch {
		case errors.Is(err, errWrongPassword):
			response.BadRequest(c, "Current password is incorrect")
		case errors.Is(err, errPasswordTooShort):
			response.BadRequest(c, "Password must be at least 6 characters")
		case errors.Is(err, errUserNotFound):
			response.NotFound(c, "User not found")
		default:
			h.log.Error("change password", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.Message(c, "Password updated")
}

func (h *Handler) forgotPassword(c *gin.Context) {
	var dto ForgotPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.svc.ForgotPassword(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, mail.ErrNotConfigured):
			response.ServiceUnavailable(c, "Email sending is not configured")
		default:
			h.log.Error("forgot password", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.Message(c, "Reset email sent")
}

func (h *Handler) resetPassword(c *gin.Context) {
	var dto ResetPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.svc.ResetPassword(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errBadResetToken):
			response.BadRequest(c, "Reset token is invalid or expired")
		case errors.Is(err, errPasswordTooShort):
			response.BadRequest(c, "Password must be at least 6 characters")
		default:
			h.log.Error("reset password", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.Message(c, "Password has been reset")
}

func publicUser(u *models.UserModel) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}
