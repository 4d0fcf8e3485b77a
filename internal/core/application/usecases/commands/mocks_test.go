package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, orderNo string) (*order.Order, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockInventoryStore struct{ mock.Mock }

func (m *MockInventoryStore) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockInventoryStore) DecrementStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *MockInventoryStore) RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

type MockAgentDirectory struct{ mock.Mock }

func (m *MockAgentDirectory) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentDirectory) ClaimAvailable(ctx context.Context) (*agent.Agent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentDirectory) Release(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAgentDirectory) SetAvailability(ctx context.Context, id kernel.UUID, availability agent.Availability) error {
	args := m.Called(ctx, id, availability)
	return args.Error(0)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Append(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFulfillmentUoW struct{ mock.Mock }

func (m *MockFulfillmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFulfillmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFulfillmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFulfillmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockFulfillmentUoW) InventoryStore() ports.InventoryStore {
	args := m.Called()
	return args.Get(0).(ports.InventoryStore)
}

func (m *MockFulfillmentUoW) AgentDirectory() ports.AgentDirectory {
	args := m.Called()
	return args.Get(0).(ports.AgentDirectory)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

var testTime = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func testClock() time.Time { return testTime }

// testEffects wires the shared post-commit emitter with a fixed clock and a
// discarded logger.
func testEffects(auditLog ports.AuditLog, publisher ports.OrderEventPublisher) commands.TransitionEffects {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return commands.NewTransitionEffects(auditLog, publisher, testClock, logger)
}

func testShipping() order.ShippingInfo {
	return order.ShippingInfo{
		Address:       "221B Baker Street",
		ReceiverName:  "John Watson",
		ReceiverPhone: "+44 20 7946 0958",
		SenderAddress: "1 Warehouse Way",
	}
}

func testProduct(t *testing.T, merchantID kernel.UUID, stock int) *product.Product {
	t.Helper()
	prod, err := product.RestoreProduct(
		kernel.NewUUID(), merchantID, "Mechanical Keyboard", 12900, stock, "1 Warehouse Way")
	require.NoError(t, err)
	return prod
}

func pendingOrder(t *testing.T, customerID, merchantID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD202601021504050042", customerID, merchantID,
		"Mechanical Keyboard", 2, 25800, testShipping(), testTime)
	require.NoError(t, err)
	return o
}

func confirmedOrder(t *testing.T, customerID, merchantID kernel.UUID) *order.Order {
	t.Helper()
	o := pendingOrder(t, customerID, merchantID)
	require.NoError(t, o.Confirm(merchantID, testTime))
	return o
}

func assignedOrder(t *testing.T, customerID, merchantID, agentID kernel.UUID) *order.Order {
	t.Helper()
	o := confirmedOrder(t, customerID, merchantID)
	require.NoError(t, o.AssignAgent(agentID, testTime))
	return o
}

func inTransitOrder(t *testing.T, customerID, merchantID, agentID kernel.UUID) *order.Order {
	t.Helper()
	o := assignedOrder(t, customerID, merchantID, agentID)
	require.NoError(t, o.PickUp(agentID, testTime))
	require.NoError(t, o.StartTransit(agentID, testTime))
	return o
}

func deliveredOrder(t *testing.T, customerID, merchantID, agentID kernel.UUID) *order.Order {
	t.Helper()
	o := inTransitOrder(t, customerID, merchantID, agentID)
	require.NoError(t, o.Deliver(agentID, testTime))
	return o
}
