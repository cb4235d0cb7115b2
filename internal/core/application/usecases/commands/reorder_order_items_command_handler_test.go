package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildOrderWithItems(t *testing.T, n int) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "PO-3002", nil, false)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		item, err := order.NewItem(kernel.NewUUID(), ord.ID(), "Flyers", 100,
			decimal.RequireFromString("10.00"),
			decimal.RequireFromString("25.00"),
			decimal.Zero)
		require.NoError(t, err)
		item.SetPosition(i + 1)
		require.NoError(t, ord.AddItem(item))
	}

	return ord
}

func TestNewReorderOrderItemsCommand_Validation(t *testing.T) {
	orderID := kernel.NewUUID()

	_, err := commands.NewReorderOrderItemsCommand(orderID, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	duplicate := kernel.NewUUID()
	_, err = commands.NewReorderOrderItemsCommand(orderID, []kernel.UUID{duplicate, duplicate})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewReorderOrderItemsCommand(kernel.UUID{}, []kernel.UUID{kernel.NewUUID()})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestReorderOrderItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := buildOrderWithItems(t, 3)
	items := ord.Items()

	// reverse the current display sequence
	newSequence := []kernel.UUID{items[2].ID(), items[0].ID(), items[1].ID()}
	cmd, _ := commands.NewReorderOrderItemsCommand(ord.ID(), newSequence)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		repo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReorderOrderItemsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, 2, items[0].Position())
	require.Equal(t, 3, items[1].Position())
	require.Equal(t, 1, items[2].Position())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReorderOrderItemsCommandHandler_Handle_IncompleteSequence(t *testing.T) {
	ctx := t.Context()
	ord := buildOrderWithItems(t, 3)
	cmd, _ := commands.NewReorderOrderItemsCommand(ord.ID(), []kernel.UUID{ord.Items()[0].ID()})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReorderOrderItemsCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestReorderOrderItemsCommandHandler_Handle_ForeignItemRejected(t *testing.T) {
	ctx := t.Context()
	ord := buildOrderWithItems(t, 2)
	items := ord.Items()

	// same length, but one identifier belongs to no item on this order
	sequence := []kernel.UUID{items[0].ID(), kernel.NewUUID()}
	cmd, _ := commands.NewReorderOrderItemsCommand(ord.ID(), sequence)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReorderOrderItemsCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
