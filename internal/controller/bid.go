package controller

import (
	"net/http"
	"time"

	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}
	outer.GET("/bids/available", h.GetAvailableBids)
	outer.GET("/bids/my", h.GetMyBids)
	outer.GET("/bids/categories", h.GetCategories)
	outer.GET("/bids/stats", h.GetBidStats)

	outer.POST("/bids/:bidId/assign", h.AssignBid)
	outer.PATCH("/bids/:bidId/status", h.UpdateBidStatus)

	return h
}

type bidsResponse struct {
	Bids []entity.BidOutputModel `json:"bids"`
}

type bidResponse struct {
	Message string                 `json:"message"`
	Bid     *entity.BidOutputModel `json:"bid"`
}

type categoriesResponse struct {
	Categories []entity.Category `json:"categories"`
}

type statsResponse struct {
	Stats *entity.BidStatsOutputModel `json:"stats"`
}

type getAvailableBidsInput struct {
	Category string `query:"category"`
	Limit    int32  `query:"limit" validate:"gte=0,lte=200"`
	Offset   int32  `query:"offset" validate:"gte=0"`
}

func newGetAvailableBidsInput() getAvailableBidsInput {
	return getAvailableBidsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /bids/available
func (h *bidRoutesHandler) GetAvailableBids(c echo.Context) error {
	var input = newGetAvailableBidsInput()
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

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetAvailableBids(c.Request().Context(), input.Category, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, bidsResponse{bids}); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch bids"}); e != nil {
		return e
	}

	return err
}

type getMyBidsInput struct {
	UserId   string `query:"userId" validate:"required,uuid"`
	Category string `query:"category"`
}

// /bids/my
func (h *bidRoutesHandler) GetMyBids(c echo.Context) error {
	var input getMyBidsInput
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

	bids, err := h.bidService.GetAssignedBids(c.Request().Context(), input.UserId, input.Category)
	if err == nil {
		if e := c.JSON(http.StatusOK, bidsResponse{bids}); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch assigned bids"}); e != nil {
		return e
	}

	return err
}

// /bids/categories
func (h *bidRoutesHandler) GetCategories(c echo.Context) error {
	categories, err := h.bidService.GetCategories(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch categories"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, categoriesResponse{categories}); e != nil {
		return e
	}

	return nil
}

// /bids/stats
func (h *bidRoutesHandler) GetBidStats(c echo.Context) error {
	stats, err := h.bidService.GetBidStats(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch statistics"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, statsResponse{stats}); e != nil {
		return e
	}

	return nil
}

type assignBidInput struct {
	BidId            string `param:"bidId" validate:"required,uuid"`
	AssignedTo       string `json:"assignedTo" validate:"required,uuid"`
	AssignedUserName string `json:"assignedUserName" validate:"required,max=100"`
	DueDate          string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

// /bids/:bidId/assign
func (h *bidRoutesHandler) AssignBid(c echo.Context) error {
	var input assignBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.BidId = c.Param("bidId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.AssignBidInput{
		BidId:            input.BidId,
		AssignedTo:       input.AssignedTo,
		AssignedUserName: input.AssignedUserName,
	}
	if input.DueDate != "" {
		dueDate, _ := time.Parse("2006-01-02", input.DueDate)
		model.DueDate = &dueDate
	}

	bid, err := h.bidService.AssignBid(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, bidResponse{"Bid assigned successfully", bid}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	case service.ErrBidAlreadyRejected:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Bid was rejected and can't be assigned"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to assign bid"}); e != nil {
			return e
		}
	}

	return err
}

type updateBidStatusInput struct {
	BidId            string `param:"bidId" validate:"required,uuid"`
	Status           string `json:"status" validate:"required,oneof=available rejected considered in-progress submitted"`
	SubmittedDocLink string `json:"submittedDocLink" validate:"omitempty,url,max=500"`
}

// /bids/:bidId/status
func (h *bidRoutesHandler) UpdateBidStatus(c echo.Context) error {
	var input updateBidStatusInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.BidId = c.Param("bidId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.UpdateBidStatusInput{
		BidId:            input.BidId,
		Status:           input.Status,
		SubmittedDocLink: input.SubmittedDocLink,
	}

	bid, err := h.bidService.UpdateBidStatus(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, bidResponse{"Bid status updated successfully", bid}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to update bid status"}); e != nil {
			return e
		}
	}

	return err
}
