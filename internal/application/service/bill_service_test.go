package service

import (
	"context"
	"testing"

	"github.com/billify/billify-api/internal/domain/enum"
	"github.com/billify/billify-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBillComputesTotals(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewBillService(repo)
	userID := uuid.New()

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		UserID: userID,
		Items: []BillItemInput{
			{ProductID: "8901063092730", Name: "Biscuits", Price: 65, Quantity: 1},
			{ProductID: "8901030865278", Name: "Detergent", Price: 45, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 155.0, bill.Subtotal)
	assert.Equal(t, 7.75, bill.Tax)
	assert.Equal(t, 162.75, bill.TotalAmount)
	assert.Equal(t, enum.BillStatusPending, bill.PaymentStatus)
	assert.Len(t, bill.Items, 2)
	assert.Equal(t, userID, bill.UserID)
}

func TestCreateBillEmptyItems(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewBillService(repo)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		UserID: uuid.New(),
		Items:  nil,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, repo.bills)
}

func TestCreateBillRejectsNonPositiveValues(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewBillService(repo)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		UserID: uuid.New(),
		Items:  []BillItemInput{{ProductID: "x", Name: "Bad", Price: 0, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.CreateBill(context.Background(), &CreateBillInput{
		UserID: uuid.New(),
		Items:  []BillItemInput{{ProductID: "x", Name: "Bad", Price: 10, Quantity: 0}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, repo.bills)
}

func TestCreateBillCanBeMarkedPaid(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewBillService(repo)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		UserID:        uuid.New(),
		Items:         []BillItemInput{{ProductID: "x", Name: "Milk", Price: 30.5, Quantity: 2}},
		PaymentStatus: enum.BillStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.BillStatusPaid, bill.PaymentStatus)
}

func TestDeleteBillOwnership(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewBillService(repo)
	owner := uuid.New()
	stranger := uuid.New()

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		UserID: owner,
		Items:  []BillItemInput{{ProductID: "x", Name: "Milk", Price: 30, Quantity: 1}},
	})
	require.NoError(t, err)

	err = svc.DeleteBill(context.Background(), stranger, bill.ID)
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
	assert.Contains(t, repo.bills, bill.ID)

	err = svc.DeleteBill(context.Background(), owner, bill.ID)
	require.NoError(t, err)
	assert.NotContains(t, repo.bills, bill.ID)
}

func TestDeleteBillNotFound(t *testing.T) {
	svc := NewBillService(newFakeBillRepo())

	err := svc.DeleteBill(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetBillScopedToOwner(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewBillService(repo)
	owner := uuid.New()

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		UserID: owner,
		Items:  []BillItemInput{{ProductID: "x", Name: "Milk", Price: 30, Quantity: 1}},
	})
	require.NoError(t, err)

	got, err := svc.GetBill(context.Background(), owner, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, got.ID)

	_, err = svc.GetBill(context.Background(), uuid.New(), bill.ID)
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}
