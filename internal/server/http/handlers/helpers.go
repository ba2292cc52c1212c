package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/server/http/dto"
	"github.com/Amarhadpad/artistgrade/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// respondError maps domain errors to HTTP statuses with a JSON body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrMissingField),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrPasswordMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		status = http.StatusConflict
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Username:  user.Username,
		Email:     user.Email,
		Phone:     user.Phone,
		Gender:    user.Gender,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:       order.OrderID,
		FullName:      order.FullName,
		Email:         order.Email,
		Phone:         order.Phone,
		Address:       order.Address,
		City:          order.City,
		State:         order.State,
		Zip:           order.Zip,
		TransactionID: order.TransactionID,
		CartItems:     order.CartItems,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		Date:          order.Date,
	}
}

func toProductResponse(product *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Stock:     product.Stock,
		Image:     product.Image,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}
