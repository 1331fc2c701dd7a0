package queries

import (
	"context"
	"database/sql"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/core/domain/model/order"
	"agrikart/internal/pkg/errs"
)

// NearbyOrdersQueryHandler reads the nearby-orders view for a courier.
//
// The handler loads the courier's position, scans every Pending order that
// has items and a known pickup coordinate, measures the great-circle distance
// in the domain's coordinate arithmetic, and keeps orders within
// NearbyRadiusKm sorted closest first.
type NearbyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewNearbyOrdersQueryHandler creates a handler for nearby-order queries.
// Requires a GORM database connection for query execution.
func NewNearbyOrdersQueryHandler(db *gorm.DB) NearbyOrdersQueryHandler {
	return NearbyOrdersQueryHandler{db: db}
}

// Handle executes the nearby-orders query.
// Returns an ObjectNotFoundError when the courier does not exist. Distances
// are rounded to two decimals after filtering, so the radius cut uses the
// exact value.
func (h NearbyOrdersQueryHandler) Handle(
	ctx context.Context,
	query NearbyOrdersQuery,
) ([]NearbyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	courierAt, err := h.courierCoordinate(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}

	responses, err := h.scanPendingOrders(ctx, courierAt)
	if err != nil {
		return nil, err
	}

	sort.Slice(responses, func(i, j int) bool {
		if responses[i].DistanceKm != responses[j].DistanceKm {
			return responses[i].DistanceKm < responses[j].DistanceKm
		}
		return responses[i].OrderID.String() < responses[j].OrderID.String()
	})

	for i := range responses {
		items, err := h.orderItems(ctx, responses[i].OrderID)
		if err != nil {
			return nil, err
		}
		responses[i].Items = items
	}

	return responses, nil
}

func (h NearbyOrdersQueryHandler) courierCoordinate(
	ctx context.Context,
	courierID kernel.UUID,
) (kernel.Coordinate, error) {
	var latitude, longitude float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			latitude,
			longitude
		FROM couriers
		WHERE id = ?
	`, courierID.Bytes()).Row()

	if err := row.Scan(&latitude, &longitude); err != nil {
		if err == sql.ErrNoRows {
			return kernel.Coordinate{}, errs.NewObjectNotFoundError("courierID", courierID.String())
		}
		return kernel.Coordinate{}, err
	}

	return kernel.NewCoordinate(latitude, longitude)
}

func (h NearbyOrdersQueryHandler) scanPendingOrders(
	ctx context.Context,
	courierAt kernel.Coordinate,
) ([]NearbyOrdersQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			b.address,
			f.name,
			f.address,
			o.pickup_latitude,
			o.pickup_longitude
		FROM orders o
		JOIN buyers b ON b.id = o.buyer_id
		LEFT JOIN farmers f ON f.id = (
			SELECT p.farmer_id
			FROM order_items oi
			JOIN produce p ON p.id = oi.produce_id
			WHERE oi.order_id = o.id
			ORDER BY oi.id
			LIMIT 1
		)
		WHERE o.status = ?
		  AND o.pickup_latitude IS NOT NULL
		  AND o.pickup_longitude IS NOT NULL
		  AND EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id)
		ORDER BY o.id
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]NearbyOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			status        int
			buyerAddress  sql.NullString
			farmerName    sql.NullString
			farmerAddress sql.NullString
			pickupLat     float64
			pickupLon     float64
		)

		if err = rows.Scan(
			&id, &status, &buyerAddress, &farmerName, &farmerAddress, &pickupLat, &pickupLon,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		farmAt, coordErr := kernel.NewCoordinate(pickupLat, pickupLon)
		if coordErr != nil {
			return nil, coordErr
		}

		distance, distErr := courierAt.DistanceKm(farmAt)
		if distErr != nil {
			return nil, distErr
		}
		if distance > NearbyRadiusKm {
			continue
		}

		responses = append(responses, NearbyOrdersQueryResponse{
			OrderID:       orderID,
			Status:        order.Status(status).String(),
			BuyerAddress:  buyerAddress.String,
			FarmerName:    farmerName.String,
			FarmerAddress: farmerAddress.String,
			FarmerLat:     pickupLat,
			FarmerLon:     pickupLon,
			DistanceKm:    math.Round(distance*100) / 100,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

func (h NearbyOrdersQueryHandler) orderItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]NearbyOrderItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]NearbyOrderItem, 0)

	for rows.Next() {
		var item NearbyOrderItem
		if err = rows.Scan(&item.Name, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
