package controller

import (
	"net/http"

	"gem-bid-tracker/internal/service"

	"github.com/labstack/echo"
)

type documentRoutesHandler struct {
	documentService service.Document
}

func newDocumentRoutesHandler(outer *echo.Group, services *service.Services) *documentRoutesHandler {
	h := &documentRoutesHandler{services.Document}
	outer.GET("/bids/document/:gemBidId", h.DownloadBidDocument)

	return h
}

// /bids/document/:gemBidId
func (h *documentRoutesHandler) DownloadBidDocument(c echo.Context) error {
	gemBidId := c.Param("gemBidId")
	if gemBidId == "" {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Bid id is required"}); e != nil {
			return e
		}

		return nil
	}

	document, err := h.documentService.GetBidDocument(c.Request().Context(), gemBidId)
	if err == nil {
		defer document.Content.Close()
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+document.FileName+`"`)

		return c.Stream(http.StatusOK, document.ContentType, document.Content)
	}

	switch err {
	case service.ErrDocumentUnavailable:
		if e := c.JSON(http.StatusBadGateway, errorResponse{"Failed to download document"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to download document"}); e != nil {
			return e
		}
	}

	return err
}
