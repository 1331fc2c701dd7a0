package queries

import (
	"errors"
	"time"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/guard"
)

var (
	ErrAssignedOrdersQueryIsNotConstructed = errors.New(
		"AssignedOrdersQuery must be created via NewAssignedOrdersQuery constructor",
	)
)

// AssignedOrdersQuery retrieves the orders currently assigned to a courier,
// most recently assigned first.
type AssignedOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignedOrdersQuery creates a query for the given courier's assignments.
func NewAssignedOrdersQuery(courierID kernel.UUID) (AssignedOrdersQuery, error) {
	query := AssignedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return AssignedOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q AssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrAssignedOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier.
func (q AssignedOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *AssignedOrdersQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

// AssignedOrdersQueryResponse is one row of the assigned-orders view.
type AssignedOrdersQueryResponse struct {
	OrderID      kernel.UUID
	Status       string
	BuyerAddress string
	DistanceKm   float64
	AssignedAt   time.Time
	Items        []NearbyOrderItem
}
