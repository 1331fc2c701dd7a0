package http

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Validator hook.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for request DTOs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCourierRequest registers a logistics partner.
type CreateCourierRequest struct {
	Name      string  `json:"name" validate:"required"`
	Phone     string  `json:"phone" validate:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CreateCourierResponse carries the generated courier id.
type CreateCourierResponse struct {
	ID string `json:"id"`
}

// AddCartItemRequest adds a line to the authenticated buyer's cart.
type AddCartItemRequest struct {
	ProduceID string `json:"produceId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderResponse carries the generated order id.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// UpdateOrderStatusRequest moves an order to a named lifecycle status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItem is one purchased line in a courier-facing order view.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NearbyOrder is one row of the nearby-orders view.
type NearbyOrder struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	BuyerAddress  string      `json:"buyerAddress"`
	FarmerName    string      `json:"farmerName"`
	FarmerAddress string      `json:"farmerAddress"`
	FarmerLat     float64     `json:"farmerLat"`
	FarmerLon     float64     `json:"farmerLon"`
	DistanceKm    float64     `json:"distanceKm"`
	Items         []OrderItem `json:"items"`
}

// AssignedOrder is one row of the assigned-orders view.
type AssignedOrder struct {
	ID           string      `json:"id"`
	Status       string      `json:"status"`
	BuyerAddress string      `json:"buyerAddress"`
	DistanceKm   float64     `json:"distanceKm"`
	AssignedAt   time.Time   `json:"assignedAt"`
	Items        []OrderItem `json:"items"`
}
