package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shirokane/todo-app-api/internal/dto"
	apierrors "github.com/shirokane/todo-app-api/internal/errors"
	"github.com/shirokane/todo-app-api/internal/middleware"
	"github.com/shirokane/todo-app-api/internal/services"
)

// AddressHandler coordinates the address endpoints.
type AddressHandler struct {
	addressService *services.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// CreateAddress creates an address and links it to the caller.
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	type CreateAddressRequest struct {
		Address1   string `json:"address1" binding:"required"`
		Address2   string `json:"address2"`
		City       string `json:"city" binding:"required"`
		State      string `json:"state" binding:"required"`
		Country    string `json:"country" binding:"required"`
		Postalcode string `json:"postalcode" binding:"required"`
		AptNum     *int   `json:"apt_num"`
	}

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	address, err := h.addressService.CreateForUser(identity, services.CreateAddressInput{
		Address1:   req.Address1,
		Address2:   req.Address2,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		Postalcode: req.Postalcode,
		AptNum:     req.AptNum,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to create address")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAddressDTO(*address))
}

// GetAddress returns the caller's linked address.
func (h *AddressHandler) GetAddress(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	address, err := h.addressService.GetForUser(identity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAddressNotFound),
			errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "Address not found")
		default:
			apierrors.InternalError(c, "Failed to fetch address")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAddressDTO(*address))
}
