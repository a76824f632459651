package controller

import (
	"net/http"

	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type ingestRoutesHandler struct {
	ingestService service.Ingest
	validate      *validator.Validate
}

func newIngestRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *ingestRoutesHandler {
	h := &ingestRoutesHandler{ingestService: services.Ingest, validate: v}
	outer.POST("/bids/fetch", h.FetchBids)

	return h
}

type fetchBidsInput struct {
	CSRFToken string `json:"csrfToken" validate:"required"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// /bids/fetch
func (h *ingestRoutesHandler) FetchBids(c echo.Context) error {
	var input fetchBidsInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.FetchBidsInput{CSRFToken: input.CSRFToken, EndDate: input.EndDate}
	report, err := h.ingestService.FetchAndStoreBids(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, report); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch bids"}); e != nil {
		return e
	}

	return err
}
