package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"agrikart/internal/adapters/out/postgres/courierrepo"
	"agrikart/internal/core/domain/model/courier"
	"agrikart/internal/core/domain/model/kernel"
	"agrikart/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CourierRepositoryIntegrationTestSuite provides integration tests for
// CourierRepository, including the unique assignment guarantee.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&courierrepo.AssignmentDTO{},
	))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE couriers, courier_assignments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip_PreservesCourier() {
	ctx := context.Background()

	testCourier := suite.createTestCourier("Arjun", 12.97, 77.59)
	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	retrieved, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)

	suite.Equal(testCourier.ID(), retrieved.ID())
	suite.Equal("Arjun", retrieved.Name())
	suite.Equal("+91-9000000001", retrieved.Phone())
	suite.InDelta(12.97, retrieved.Coordinate().Latitude(), 1e-9)
	suite.InDelta(77.59, retrieved.Coordinate().Longitude(), 1e-9)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NonExistentCourier_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAll_ReturnsCouriersOrderedByID() {
	ctx := context.Background()

	suite.tracker.On(
		"TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	for _, name := range []string{"Arjun", "Bhavna", "Chetan"} {
		suite.Require().NoError(
			suite.repository.Add(ctx, suite.createTestCourier(name, 12.97, 77.59)))
	}

	couriers, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(couriers, 3)

	for i := range len(couriers) - 1 {
		suite.Less(couriers[i].ID().String(), couriers[i+1].ID().String(),
			"couriers should come back in id order")
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAll_Empty_ReturnsEmptySlice() {
	couriers, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Empty(couriers)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAddAssignment_RoundTrip() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	assignment, err := courier.NewAssignment(courierID, orderID, 7.25)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddAssignment(ctx, assignment))

	retrieved, err := suite.repository.GetAssignment(ctx, orderID)
	suite.Require().NoError(err)

	suite.Equal(courierID, retrieved.CourierID())
	suite.Equal(orderID, retrieved.OrderID())
	suite.InDelta(7.25, retrieved.DistanceKm(), 1e-9)
	suite.WithinDuration(assignment.AssignedAt(), retrieved.AssignedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAddAssignment_SameOrderTwice_Fails() {
	ctx := context.Background()

	orderID := kernel.NewUUID()

	first, err := courier.NewAssignment(kernel.NewUUID(), orderID, 3.0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddAssignment(ctx, first))

	second, err := courier.NewAssignment(kernel.NewUUID(), orderID, 5.0)
	suite.Require().NoError(err)

	err = suite.repository.AddAssignment(ctx, second)
	suite.Require().Error(err)

	// The original assignment survives.
	retrieved, err := suite.repository.GetAssignment(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(first.CourierID(), retrieved.CourierID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAssignment_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.GetAssignment(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestCourier creates a courier positioned at the given coordinate.
func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(
	name string, latitude, longitude float64,
) *courier.Courier {
	coordinate, err := kernel.NewCoordinate(latitude, longitude)
	suite.Require().NoError(err)

	testCourier, err := courier.NewCourier(
		kernel.NewUUID(), name, "+91-9000000001", "MG Road", coordinate)
	suite.Require().NoError(err)
	return testCourier
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
