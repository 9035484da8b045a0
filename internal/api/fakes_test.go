package api

import (
	"context"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/service"
)

// fakeUserService is a function-field stand-in for service.UserService.
type fakeUserService struct {
	registerFn     func(ctx context.Context, email, name, password string) (*domain.User, error)
	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	getUserFn      func(ctx context.Context, userID int64) (*domain.User, error)
}

var _ service.UserService = (*fakeUserService)(nil)

func (f *fakeUserService) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	return f.registerFn(ctx, email, name, password)
}

func (f *fakeUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return f.authenticateFn(ctx, email, password)
}

func (f *fakeUserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return f.getUserFn(ctx, userID)
}

// fakeOrderService is a function-field stand-in for service.OrderService.
type fakeOrderService struct {
	checkoutFn func(ctx context.Context, userID, cartID int64) (*domain.Order, error)
	getFn      func(ctx context.Context, userID, orderID int64) (*domain.Order, error)
	listFn     func(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[domain.Order], error)
	cancelFn   func(ctx context.Context, userID, orderID int64) (*domain.Order, error)
}

var _ service.OrderService = (*fakeOrderService)(nil)

func (f *fakeOrderService) Checkout(ctx context.Context, userID, cartID int64) (*domain.Order, error) {
	return f.checkoutFn(ctx, userID, cartID)
}

func (f *fakeOrderService) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	return f.getFn(ctx, userID, orderID)
}

func (f *fakeOrderService) ListOrders(
	ctx context.Context,
	userID int64,
	req pagination.Request,
) (pagination.Page[domain.Order], error) {
	return f.listFn(ctx, userID, req)
}

func (f *fakeOrderService) CancelOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	return f.cancelFn(ctx, userID, orderID)
}
