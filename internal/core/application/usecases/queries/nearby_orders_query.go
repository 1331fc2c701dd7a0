// Package queries contains read operations over the storage read models.
// Implements the Query side of the CQRS architecture: handlers read raw SQL
// projections and never load full aggregates.
package queries

import (
	"errors"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/guard"
)

var (
	ErrNearbyOrdersQueryIsNotConstructed = errors.New(
		"NearbyOrdersQuery must be created via NewNearbyOrdersQuery constructor",
	)
)

// NearbyRadiusKm is the maximum pickup distance, in kilometers, at which a
// pending order is shown to a courier browsing for work.
const NearbyRadiusKm = 1000.0

// NearbyOrdersQuery retrieves the pending, distance-annotated orders a
// courier could pick up: every Pending order whose farm lies within
// NearbyRadiusKm of the courier's position, closest first.
//
// Example:
//
//	query, _ := NewNearbyOrdersQuery(courierID)
//	handler := NewNearbyOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get nearby orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("order %s is %.2f km away\n", o.OrderID, o.DistanceKm)
//	}
type NearbyOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewNearbyOrdersQuery creates a query for the given courier's nearby orders.
func NewNearbyOrdersQuery(courierID kernel.UUID) (NearbyOrdersQuery, error) {
	query := NearbyOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return NearbyOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q NearbyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrNearbyOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the browsing courier.
func (q NearbyOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *NearbyOrdersQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

// NearbyOrderItem is one purchased line in the nearby-orders view.
type NearbyOrderItem struct {
	Name     string
	Quantity int
}

/// NearbyOrdersQueryResponse is one row of the nearby-orders view: a pending
// order annotated with its pickup farm and the distance from the courier,
// rounded to two decimals.
type NearbyOrdersQueryResponse struct {
	OrderID       kernel.UUID
	Status        string
	BuyerAddress  string
	FarmerName    string
	FarmerAddress string
	FarmerLat     float64
	FarmerLon     float64
	DistanceKm    float64
	Items         []NearbyOrderItem
}
