package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/quickfuel/fuelquote/internal/domain/errors"
	"github.com/quickfuel/fuelquote/internal/domain/model"
	"github.com/quickfuel/fuelquote/internal/server/http/dto"
	"github.com/quickfuel/fuelquote/internal/server/http/middleware"
)

// QuoteHandler manages quote submission and history endpoints.
type QuoteHandler struct {
	profiles ProfileFacade
	quotes   QuoteFacade
}

// NewQuoteHandler constructs QuoteHandler.
func NewQuoteHandler(profiles ProfileFacade, quotes QuoteFacade) *QuoteHandler {
	return &QuoteHandler{profiles: profiles, quotes: quotes}
}

// Form handles GET /fuel_quote_form, pre-filled with the profile address and
// the current price per gallon.
func (h *QuoteHandler) Form(c *gin.Context) {
	userID := CurrentUserID(c)
	profile, err := h.profiles.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			middleware.SetFlash(c, "Set up your delivery profile first")
			c.Redirect(http.StatusSeeOther, "/profile")
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.QuotePrefill{
		DeliveryAddress: profile.DeliveryAddress(),
		PricePerGallon:  h.quotes.CurrentPrice(c.Request.Context()),
		Flash:           middleware.TakeFlash(c),
	})
}

// Submit handles POST /fuel_quote_form. Price and total are computed server
// side; any client-supplied amounts are ignored.
func (h *QuoteHandler) Submit(c *gin.Context) {
	userID := CurrentUserID(c)

	var form dto.QuoteForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.SetFlash(c, "Invalid number of gallons requested")
		c.Redirect(http.StatusSeeOther, "/fuel_quote_form")
		return
	}

	_, err := h.quotes.CreateQuote(c.Request.Context(), userID, form.GallonsRequested, form.DeliveryDate)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			middleware.SetFlash(c, "Invalid gallons or delivery date")
			c.Redirect(http.StatusSeeOther, "/fuel_quote_form")
		case errors.Is(err, domainErrors.ErrProfileRequired):
			middleware.SetFlash(c, "Set up your delivery profile first")
			c.Redirect(http.StatusSeeOther, "/profile")
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetFlash(c, "Fuel quote submitted successfully")
	c.Redirect(http.StatusSeeOther, "/history")
}

// History handles GET /history.
func (h *QuoteHandler) History(c *gin.Context) {
	userID := CurrentUserID(c)
	quotes, err := h.quotes.QuoteHistory(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		response = append(response, toQuoteResponse(q))
	}

	c.JSON(http.StatusOK, response)
}

func toQuoteResponse(quote model.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		GallonsRequested: quote.GallonsRequested,
		DeliveryAddress:  quote.DeliveryAddress,
		DeliveryDate:     quote.DeliveryDate.Format(model.DateLayout),
		PricePerGallon:   quote.PricePerGallon,
		TotalDue:         quote.TotalDue,
	}
}
