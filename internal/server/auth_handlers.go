package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/auth"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/config"
	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
)

const resetSuccessMessage = "If an account with that email exists, we have sent a password reset link."

type signupRequest struct {
	PartnerOneName string `json:"partnerOneName"`
	PartnerTwoName string `json:"partnerTwoName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

// Signup creates an account. Field checks return specific messages so the
// client can surface them directly.
func (h *APIHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	switch {
	case req.Email == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	case req.Password == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	case req.PartnerOneName == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Partner one name is required"})
		return
	case req.PartnerTwoName == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Partner two name is required"})
		return
	}

	hash, err := h.deps.Hasher.Hash(req.Password)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	user, err := h.deps.Users.Create(c.Request.Context(), req.Email, hash, req.PartnerOneName, req.PartnerTwoName)
	if err != nil {
		var stdErr *apperrors.StandardError
		if errors.As(err, &stdErr) && stdErr.Code == apperrors.ErrCodeEmailTaken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists with this email"})
			return
		}
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user.Public(),
	})
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signin verifies credentials and issues a session token.
func (h *APIHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.deps.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	if user == nil || !h.deps.Hasher.Compare(user.PasswordHash, req.Password) {
		h.errors.Respond(c, apperrors.NewInvalidCredentialsError())
		return
	}

	session, err := h.deps.Sessions.Create(c.Request.Context(), user.ID, user.Email)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": session.Token,
		"user":  user.Public(),
	})
}

// Signout removes the current session.
func (h *APIHandler) Signout(c *gin.Context) {
	session := currentSession(c)
	if err := h.deps.Sessions.Delete(c.Request.Context(), session.Token); err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a reset token and emails the reset link. The
// response never reveals whether the account exists.
func (h *APIHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.deps.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"message": resetSuccessMessage})
		return
	}

	token, err := auth.NewResetToken()
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	expiry := time.Now().Add(config.GetDuration(h.deps.Config.Auth.ResetTokenTTL))
	if err := h.deps.Users.SaveResetToken(ctx, user.ID, token, expiry); err != nil {
		h.errors.Respond(c, err)
		return
	}

	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", h.deps.Config.Mail.ResetBaseURL, token)
	if err := h.deps.Mailer.SendPasswordReset(ctx, user.Email, resetURL, expiry); err != nil {
		// The token is stored; the user can retry. Do not leak the failure.
		h.deps.Logger.WithError(err).Error("failed to send reset email", map[string]interface{}{
			"userId": user.ID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": resetSuccessMessage})
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetPassword consumes a reset token and sets the new password.
func (h *APIHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token and password are required"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.deps.Users.FindByResetToken(ctx, req.Token)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
		return
	}

	hash, err := h.deps.Hasher.Hash(req.Password)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	if err := h.deps.Users.UpdatePassword(ctx, user.ID, hash); err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
