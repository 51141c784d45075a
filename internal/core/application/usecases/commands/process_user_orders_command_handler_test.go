package commands_test

import (
	"context"
	"errors"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/classification"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) GetAllPendingForUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status, priority order.Priority) error {
	args := m.Called(ctx, id, status, priority)
	return args.Error(0)
}

func (m *MockOrderRepository) GetUsersWithPendingOrders(_ context.Context) ([]kernel.UUID, error) {
	return nil, errors.New("not implemented in mock")
}

type MockClassifier struct{ mock.Mock }

func (m *MockClassifier) Classify(ctx context.Context, orderID kernel.UUID) (classification.Result, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(classification.Result), args.Error(1)
}

type MockExporter struct{ mock.Mock }

func (m *MockExporter) Export(o *order.Order) error {
	args := m.Called(o)
	return args.Error(0)
}

type handlerFixture struct {
	repo       *MockOrderRepository
	classifier *MockClassifier
	exporter   *MockExporter
	handler    commands.ProcessUserOrdersCommandHandler
	userID     kernel.UUID
	cmd        commands.ProcessUserOrdersCommand
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	repo := new(MockOrderRepository)
	classifier := new(MockClassifier)
	exporter := new(MockExporter)

	userID := kernel.NewUUID()
	cmd, err := commands.NewProcessUserOrdersCommand(userID)
	require.NoError(t, err)

	return &handlerFixture{
		repo:       repo,
		classifier: classifier,
		exporter:   exporter,
		handler:    commands.NewProcessUserOrdersCommandHandler(repo, classifier, exporter),
		userID:     userID,
		cmd:        cmd,
	}
}

func (f *handlerFixture) makeOrder(t *testing.T, typ order.Type, amount float64, flag bool) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), f.userID, typ, amount, flag)
	require.NoError(t, err)
	return o
}

func (f *handlerFixture) assertAll(t *testing.T) {
	t.Helper()
	f.repo.AssertExpectations(t)
	f.classifier.AssertExpectations(t)
	f.exporter.AssertExpectations(t)
}

func TestProcessUserOrdersCommandHandler_Handle_Validation(t *testing.T) {
	t.Run("should reject unconstructed command", func(t *testing.T) {
		f := newHandlerFixture(t)

		_, err := f.handler.Handle(t.Context(), commands.ProcessUserOrdersCommand{})

		require.ErrorIs(t, err, commands.ErrProcessUserOrdersCommandIsNotConstructed)
	})
}

func TestProcessUserOrdersCommandHandler_Handle_Fetch(t *testing.T) {
	t.Run("should propagate fetch failure with no partial result", func(t *testing.T) {
		f := newHandlerFixture(t)
		fetchErr := errors.New("connection refused")
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return(nil, fetchErr).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.ErrorIs(t, err, fetchErr)
		assert.Nil(t, orders)
		f.assertAll(t)
	})

	t.Run("should return empty slice for user with no orders", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{}, nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		assert.Empty(t, orders)
		// no capability calls beyond the fetch
		f.assertAll(t)
	})
}

func TestProcessUserOrdersCommandHandler_Handle_TypeA(t *testing.T) {
	t.Run("should mark exported on successful export", func(t *testing.T) {
		f := newHandlerFixture(t)
		o := f.makeOrder(t, order.TypeA, 100, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
		f.exporter.On("Export", o).Return(nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, o.ID(), order.Exported, order.Low).Return(nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.Exported, orders[0].Status())
		f.assertAll(t)
	})

	t.Run("should mark export_failed when the sink cannot be opened", func(t *testing.T) {
		f := newHandlerFixture(t)
		o := f.makeOrder(t, order.TypeA, 100, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
		f.exporter.On("Export", o).Return(errors.New("open failed")).Once()
		f.repo.On("UpdateStatus", mock.Anything, o.ID(), order.ExportFailed, order.Low).Return(nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		assert.Equal(t, order.ExportFailed, orders[0].Status())
		f.assertAll(t)
	})
}

func TestProcessUserOrdersCommandHandler_Handle_TypeB(t *testing.T) {
	t.Run("should mark api_failure on classification failure", func(t *testing.T) {
		f := newHandlerFixture(t)
		o := f.makeOrder(t, order.TypeB, 80, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
		f.classifier.On("Classify", mock.Anything, o.ID()).
			Return(classification.Result{}, errs.NewClassificationErrorWithCause(o.ID().String(), errors.New("timeout"))).Once()
		f.repo.On("UpdateStatus", mock.Anything, o.ID(), order.APIFailure, order.Low).Return(nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		assert.Equal(t, order.APIFailure, orders[0].Status())
		f.assertAll(t)
	})

	t.Run("should propagate non-classification failures", func(t *testing.T) {
		f := newHandlerFixture(t)
		o := f.makeOrder(t, order.TypeB, 80, false)
		unexpected := errors.New("context canceled")
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
		f.classifier.On("Classify", mock.Anything, o.ID()).Return(classification.Result{}, unexpected).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.ErrorIs(t, err, unexpected)
		assert.Nil(t, orders)
		f.assertAll(t)
	})

	t.Run("should mark api_error on non-success envelope", func(t *testing.T) {
		f := newHandlerFixture(t)
		o := f.makeOrder(t, order.TypeB, 80, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
		f.classifier.On("Classify", mock.Anything, o.ID()).
			Return(classification.NewResult("failure", 60), nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, o.ID(), order.APIError, order.Low).Return(nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		assert.Equal(t, order.APIError, orders[0].Status())
		f.assertAll(t)
	})

	t.Run("should apply classification precedence", func(t *testing.T) {
		testCases := []struct {
			name     string
			amount   float64
			flag     bool
			data     float64
			expected order.Status
		}{
			{"high data low amount is processed", 80, false, 60, order.Processed},
			{"boundary data and amount is error", 150, false, 50, order.Error},
			{"flag does not override the amount rule", 80, true, 60, order.Processed},
			{"low data is pending", 80, false, 30, order.Pending},
			{"flagged high amount is pending", 300, true, 70, order.Pending},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newHandlerFixture(t)
				o := f.makeOrder(t, order.TypeB, tc.amount, tc.flag)
				f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
				f.classifier.On("Classify", mock.Anything, o.ID()).
					Return(classification.NewResult("success", tc.data), nil).Once()
				f.repo.On("UpdateStatus", mock.Anything, o.ID(), tc.expected, mock.Anything).Return(nil).Once()

				orders, err := f.handler.Handle(t.Context(), f.cmd)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, orders[0].Status())
				f.assertAll(t)
			})
		}
	})
}

func TestProcessUserOrdersCommandHandler_Handle_TypeC(t *testing.T) {
	t.Run("should mark completed for flagged order", func(t *testing.T) {
		f := newHandlerFixture(t)
		o := f.makeOrder(t, order.TypeC, 10, true)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, o.ID(), order.Completed, order.Low).Return(nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, orders[0].Status())
		f.assertAll(t)
	})

	t.Run("should mark in_progress for unflagged order", func(t *testing.T) {
		f := newHandlerFixture(t)
		o := f.makeOrder(t, order.TypeC, 10, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, o.ID(), order.InProgress, order.Low).Return(nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, orders[0].Status())
		f.assertAll(t)
	})
}

func TestProcessUserOrdersCommandHandler_Handle_UnknownType(t *testing.T) {
	t.Run("should mark unknown_type", func(t *testing.T) {
		f := newHandlerFixture(t)
		o := f.makeOrder(t, order.TypeUnknown, 10, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, o.ID(), order.UnknownType, order.Low).Return(nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		assert.Equal(t, order.UnknownType, orders[0].Status())
		f.assertAll(t)
	})
}

func TestProcessUserOrdersCommandHandler_Handle_Priority(t *testing.T) {
	t.Run("should derive high priority above the threshold regardless of type", func(t *testing.T) {
		f := newHandlerFixture(t)
		a := f.makeOrder(t, order.TypeA, 250, false)
		b := f.makeOrder(t, order.TypeB, 201, false)
		c := f.makeOrder(t, order.TypeC, 999, true)
		u := f.makeOrder(t, order.TypeUnknown, 300, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).
			Return([]*order.Order{a, b, c, u}, nil).Once()
		f.exporter.On("Export", a).Return(nil).Once()
		f.classifier.On("Classify", mock.Anything, b.ID()).
			Return(classification.NewResult("success", 10), nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, a.ID(), order.Exported, order.High).Return(nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, b.ID(), order.Pending, order.High).Return(nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, c.ID(), order.Completed, order.High).Return(nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, u.ID(), order.UnknownType, order.High).Return(nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		require.Len(t, orders, 4)
		for _, o := range orders {
			assert.Equal(t, order.High, o.Priority())
		}
		f.assertAll(t)
	})

	t.Run("should keep low priority at exactly the threshold", func(t *testing.T) {
		f := newHandlerFixture(t)
		o := f.makeOrder(t, order.TypeC, 200, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).Return([]*order.Order{o}, nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, o.ID(), order.InProgress, order.Low).Return(nil).Once()

		_, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		f.assertAll(t)
	})
}

func TestProcessUserOrdersCommandHandler_Handle_Persistence(t *testing.T) {
	t.Run("should contain persistence failure as db_error and continue the batch", func(t *testing.T) {
		f := newHandlerFixture(t)
		first := f.makeOrder(t, order.TypeC, 10, true)
		second := f.makeOrder(t, order.TypeC, 300, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).
			Return([]*order.Order{first, second}, nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, first.ID(), order.Completed, order.Low).
			Return(errs.NewPersistenceErrorWithCause("update status", errors.New("deadlock"))).Once()
		f.repo.On("UpdateStatus", mock.Anything, second.ID(), order.InProgress, order.High).Return(nil).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, order.DBError, orders[0].Status())
		// computed priority survives the db_error downgrade
		assert.Equal(t, order.Low, orders[0].Priority())
		assert.Equal(t, order.InProgress, orders[1].Status())
		f.assertAll(t)
	})

	t.Run("should propagate non-persistence failures and abort the batch", func(t *testing.T) {
		f := newHandlerFixture(t)
		first := f.makeOrder(t, order.TypeC, 10, true)
		second := f.makeOrder(t, order.TypeC, 10, false)
		unexpected := errors.New("connection lost mid-flight")
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).
			Return([]*order.Order{first, second}, nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, first.ID(), order.Completed, order.Low).
			Return(unexpected).Once()

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.ErrorIs(t, err, unexpected)
		assert.Nil(t, orders)
		// the second order is never touched
		f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, second.ID(), mock.Anything, mock.Anything)
		f.assertAll(t)
	})
}

func TestProcessUserOrdersCommandHandler_Handle_MixedBatch(t *testing.T) {
	t.Run("should process a mixed batch in fetch order", func(t *testing.T) {
		f := newHandlerFixture(t)
		a := f.makeOrder(t, order.TypeA, 250, false)
		b := f.makeOrder(t, order.TypeB, 250, false)
		c := f.makeOrder(t, order.TypeC, 250, true)
		u := f.makeOrder(t, order.TypeUnknown, 250, false)
		f.repo.On("GetAllPendingForUser", mock.Anything, f.userID).
			Return([]*order.Order{a, b, c, u}, nil).Once()
		f.exporter.On("Export", a).Return(nil).Once()
		f.classifier.On("Classify", mock.Anything, b.ID()).
			Return(classification.NewResult("success", 80), nil).Once()
		f.repo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything, order.High).Return(nil).Times(4)

		orders, err := f.handler.Handle(t.Context(), f.cmd)

		require.NoError(t, err)
		require.Len(t, orders, 4)
		assert.True(t, orders[0].IsEqual(a))
		assert.True(t, orders[1].IsEqual(b))
		assert.True(t, orders[2].IsEqual(c))
		assert.True(t, orders[3].IsEqual(u))
		assert.Equal(t, order.Exported, orders[0].Status())
		// amount 250, data 80: rule 1 fails on amount, rule 2 fails too
		assert.Equal(t, order.Error, orders[1].Status())
		assert.Equal(t, order.Completed, orders[2].Status())
		assert.Equal(t, order.UnknownType, orders[3].Status())
		f.assertAll(t)
	})
}
