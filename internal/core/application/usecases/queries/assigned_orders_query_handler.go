package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/order"
)

// AssignedOrdersQueryHandler reads the assigned-orders view for a courier:
// every order joined through courier_assignments, newest assignment first.
type AssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewAssignedOrdersQueryHandler creates a handler for assigned-order queries.
func NewAssignedOrdersQueryHandler(db *gorm.DB) AssignedOrdersQueryHandler {
	return AssignedOrdersQueryHandler{db: db}
}

// Handle executes the assigned-orders query.
// An unknown courier simply yields an empty view.
func (h AssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query AssignedOrdersQuery,
) ([]AssignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			b.address,
			ca.distance_km,
			ca.assigned_at
		FROM courier_assignments ca
		JOIN orders o ON o.id = ca.order_id
		JOIN buyers b ON b.id = o.buyer_id
		WHERE ca.courier_id = ?
		ORDER BY ca.assigned_at DESC, o.id
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]AssignedOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			status       int
			buyerAddress sql.NullString
			distanceKm   float64
			assignedAt   time.Time
		)

		if err = rows.Scan(&id, &status, &buyerAddress, &distanceKm, &assignedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, AssignedOrdersQueryResponse{
			OrderID:      orderID,
			Status:       order.Status(status).String(),
			BuyerAddress: buyerAddress.String,
			DistanceKm:   distanceKm,
			AssignedAt:   assignedAt.UTC(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	itemsHandler := NearbyOrdersQueryHandler{db: h.db}
	for i := range responses {
		items, itemsErr := itemsHandler.orderItems(ctx, responses[i].OrderID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		responses[i].Items = items
	}

	return responses, nil
}
