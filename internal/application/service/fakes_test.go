package service

import (
	"context"
	"errors"
	"sort"

	"github.com/billify/billify-api/internal/domain/entity"
	"github.com/billify/billify-api/internal/domain/repository"
	"github.com/billify/billify-api/internal/infrastructure/gateway"
	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. Only the behavior the
// services rely on is implemented.

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.Bill
	err   error
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (r *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	if r.err != nil {
		return r.err
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.bills[id], nil
}

func (r *fakeBillRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Bill, error) {
	var out []entity.Bill
	for _, b := range r.bills {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.bills, id)
	return nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
	err      error
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if r.err != nil {
		return r.err
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.Barcode] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	return r.products[barcode], nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakeTicketRepo struct {
	tickets []*entity.SupportTicket
	err     error
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	if r.err != nil {
		return r.err
	}
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	r.tickets = append(r.tickets, ticket)
	return nil
}

func (r *fakeTicketRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SupportTicket, error) {
	var out []entity.SupportTicket
	for _, t := range r.tickets {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

// fakeGateway verifies against a fixed secret and hands back canned orders.
type fakeGateway struct {
	secret     string
	lastAmount int64
	lastRcpt   string
	failOrders bool
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*gateway.Order, error) {
	if g.failOrders {
		return nil, errors.New("gateway unreachable")
	}
	g.lastAmount = amountMinor
	g.lastRcpt = receipt
	return &gateway.Order{
		ID:       "order_" + uuid.New().String()[:8],
		Amount:   amountMinor,
		Currency: "INR",
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return gateway.VerifyPaymentSignature(orderID, paymentID, signature, g.secret)
}
