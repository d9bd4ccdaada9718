package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/quickfuel/fuelquote/internal/domain/errors"
	"github.com/quickfuel/fuelquote/internal/domain/model"
	"github.com/quickfuel/fuelquote/internal/server/http/dto"
	"github.com/quickfuel/fuelquote/internal/server/http/middleware"
	"github.com/quickfuel/fuelquote/internal/usecase"
)

// ProfileHandler manages the delivery profile endpoints and the home page.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Show handles GET /profile. An absent profile renders an empty form.
func (h *ProfileHandler) Show(c *gin.Context) {
	userID := CurrentUserID(c)
	profile, err := h.facade.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusOK, dto.ProfileResponse{})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Save handles POST /profile.
func (h *ProfileHandler) Save(c *gin.Context) {
	userID := CurrentUserID(c)

	var form dto.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	_, err := h.facade.SaveProfile(c.Request.Context(), userID, usecase.ProfileFields{
		FullName: form.FullName,
		Address1: form.Address1,
		Address2: form.Address2,
		City:     form.City,
		State:    form.State,
		Zipcode:  form.Zipcode,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			middleware.SetFlash(c, "All fields except address line 2 are required")
			c.Redirect(http.StatusSeeOther, "/profile")
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Home handles GET /. Users without a profile are sent to profile setup.
func (h *ProfileHandler) Home(c *gin.Context) {
	userID := CurrentUserID(c)
	profile, err := h.facade.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			middleware.SetFlash(c, "Set up your delivery profile first")
			c.Redirect(http.StatusSeeOther, "/profile")
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// ProfileData handles GET /get_profile_data.
func (h *ProfileHandler) ProfileData(c *gin.Context) {
	userID := CurrentUserID(c)
	profile, err := h.facade.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile data not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileDataResponse{DeliveryAddress: profile.DeliveryAddress()})
}

func toProfileResponse(profile *model.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		FullName: profile.FullName,
		Address1: profile.Address1,
		Address2: profile.Address2,
		City:     profile.City,
		State:    profile.State,
		Zipcode:  profile.Zipcode,
	}
}
