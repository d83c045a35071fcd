package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports/mocks"
	"github.com/Gunvolt24/orderlines/internal/usecase"
	"github.com/Gunvolt24/orderlines/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const oneLine = `{"OrderLineID":1,"OrderID":2,"StockItemID":3,"Description":"d","PackageTypeID":4,"Quantity":5,"UnitPrice":"1.5"}`

func newOrderLineService(t *testing.T) (*usecase.OrderLineService, *mocks.MockOrderLineRepository, *mocks.MockOrderLineValidator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderLineRepository(ctrl)
	validator := mocks.NewMockOrderLineValidator(ctrl)
	return usecase.NewOrderLineService(repo, noopLogger{}, validator), repo, validator
}

func TestListOrderLines_OffsetFromPage(t *testing.T) {
	svc, repo, _ := newOrderLineService(t)

	repo.EXPECT().
		ListByPackageType(gomock.Any(), 3, 25, 50).
		Return([]domain.OrderLine{line(51, 3, 1)}, nil)

	got, err := svc.ListOrderLines(context.Background(), domain.Query{TypeID: 3, Page: 3, PageSize: 25})
	require.NoError(t, err)
	require.Equal(t, []int64{51}, ids(got))
}

func TestListOrderLines_EmptyIsNotNil(t *testing.T) {
	svc, repo, _ := newOrderLineService(t)

	repo.EXPECT().ListByPackageType(gomock.Any(), 1, 25, 0).Return(nil, nil)

	got, err := svc.ListOrderLines(context.Background(), domain.Query{TypeID: 1, Page: 1, PageSize: 25})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestListOrderLines_InvalidQuery(t *testing.T) {
	tests := []struct {
		name string
		q    domain.Query
	}{
		{"type_zero", domain.Query{TypeID: 0, Page: 1, PageSize: 25}},
		{"type_15", domain.Query{TypeID: 15, Page: 1, PageSize: 25}},
		{"page_zero", domain.Query{TypeID: 1, Page: 0, PageSize: 25}},
		{"size_zero", domain.Query{TypeID: 1, Page: 1, PageSize: 0}},
		{"size_too_big", domain.Query{TypeID: 1, Page: 1, PageSize: usecase.MaxPageSize + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newOrderLineService(t)
			repo.EXPECT().ListByPackageType(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.ListOrderLines(context.Background(), tt.q)
			require.ErrorIs(t, err, usecase.ErrInvalidQuery)
		})
	}
}

func TestListOrderLines_RepoError(t *testing.T) {
	svc, repo, _ := newOrderLineService(t)
	boom := errors.New("db down")

	repo.EXPECT().ListByPackageType(gomock.Any(), 1, 25, 0).Return(nil, boom)

	_, err := svc.ListOrderLines(context.Background(), domain.Query{TypeID: 1, Page: 1, PageSize: 25})
	require.ErrorIs(t, err, boom)
}

func TestSaveFromMessage_InvalidJson(t *testing.T) {
	svc, repo, _ := newOrderLineService(t)
	repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Times(0)

	err := svc.SaveFromMessage(context.Background(), []byte("{"))
	require.ErrorIs(t, err, validate.ErrInvalidJSON)
}

func TestSaveFromMessage_ValidationFailed(t *testing.T) {
	svc, repo, validator := newOrderLineService(t)

	validator.EXPECT().
		Validate(gomock.Any(), gomock.AssignableToTypeOf(&domain.OrderLine{})).
		Return(validate.ErrInvalidOrderLine)
	repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Times(0)

	err := svc.SaveFromMessage(context.Background(), []byte(oneLine))
	require.ErrorIs(t, err, validate.ErrInvalidOrderLine)
}

func TestSaveFromMessage_Array_Success(t *testing.T) {
	svc, repo, validator := newOrderLineService(t)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	repo.EXPECT().
		SaveBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lines []domain.OrderLine) error {
			require.Len(t, lines, 2)
			require.Equal(t, int64(1), lines[0].OrderLineID)
			require.Equal(t, "1.5", lines[0].UnitPrice.String())
			return nil
		})

	raw := "[" + oneLine + "," + oneLine + "]"
	require.NoError(t, svc.SaveFromMessage(context.Background(), []byte(raw)))
}

func TestSaveFromMessage_RepoErrorIsTransient(t *testing.T) {
	svc, repo, validator := newOrderLineService(t)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(errors.New("conn reset"))

	err := svc.SaveFromMessage(context.Background(), []byte(oneLine))
	require.Error(t, err)
	require.NotErrorIs(t, err, validate.ErrInvalidJSON)
	require.NotErrorIs(t, err, validate.ErrInvalidOrderLine)
}
