package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipeshare/internal/service"
)

type profileUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) getProfile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	// Profiles are self-only; there is no admin role.
	if userID != callerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized to view this profile"})
		return
	}

	user, err := h.services.Users.Profile(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) updateProfile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if userID != callerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized to update this profile"})
		return
	}

	var input profileUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Users.UpdateProfile(c.Request.Context(), userID, service.ProfileUpdate{
		Username: input.Username,
		Email:    input.Email,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(users),
		"users": users,
	})
}
