package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/adapter/logger"
	"bistro/internal/domain"
	"bistro/internal/interfaces"
)

type fakeMenuRepo struct {
	items map[int]domain.MenuItem
}

func (f *fakeMenuRepo) ListAll(_ context.Context) ([]domain.MenuItem, error)       { return nil, nil }
func (f *fakeMenuRepo) ListAvailable(_ context.Context) ([]domain.MenuItem, error) { return nil, nil }
func (f *fakeMenuRepo) Create(_ context.Context, _ *domain.MenuItem) error         { return nil }
func (f *fakeMenuRepo) Update(_ context.Context, _ *domain.MenuItem) error         { return nil }
func (f *fakeMenuRepo) Delete(_ context.Context, _ int) error                      { return nil }

func (f *fakeMenuRepo) FindByID(_ context.Context, id int) (*domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

type fakeOrderRepo struct {
	orders      map[int]*domain.Order
	nextID      int
	createCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int]*domain.Order), nextID: 1}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	f.createCalls++
	order.ID = f.nextID
	f.nextID++
	for i := range order.Items {
		order.Items[i].ID = i + 1
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id int) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderRepo) List(_ context.Context, offset, limit int, _ *domain.Status) ([]*domain.Order, error) {
	var all []*domain.Order
	for id := f.nextID - 1; id >= 1; id-- {
		if o, ok := f.orders[id]; ok {
			all = append(all, o)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeOrderRepo) Count(_ context.Context, _ *domain.Status) (int, error) {
	return len(f.orders), nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int, status domain.Status, updatedAt time.Time) error {
	order, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = updatedAt
	return nil
}

func newTestService(menu *fakeMenuRepo, orders *fakeOrderRepo) *Service {
	return NewService(orders, menu, logger.New("test"))
}

func coffeeMenu() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[int]domain.MenuItem{
		5: {ID: 5, Name: "Coffee", Price: 3.50, Category: "beverages", Available: true},
		6: {ID: 6, Name: "Tea", Price: 2.50, Category: "beverages", Available: false},
	}}
}

func TestSubmit(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestService(coffeeMenu(), orders)

	order, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		Items: []interfaces.SubmitOrderItem{{MenuItemID: 5, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, "Guest", order.CustomerName)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.InDelta(t, 7.00, order.Subtotal, 1e-9)
	assert.InDelta(t, 0.56, order.Tax, 1e-9)
	assert.InDelta(t, 7.56, order.Total, 1e-9)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Coffee", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 3.50, order.Items[0].Price, 1e-9)
}

func TestSubmit_CustomerDetailsKept(t *testing.T) {
	svc := newTestService(coffeeMenu(), newFakeOrderRepo())

	order, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		CustomerName:  "  Alice  ",
		CustomerEmail: "alice@example.com",
		Notes:         "no sugar",
		Items:         []interfaces.SubmitOrderItem{{MenuItemID: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", order.CustomerName)
	require.NotNil(t, order.CustomerEmail)
	assert.Equal(t, "alice@example.com", *order.CustomerEmail)
	assert.Nil(t, order.CustomerPhone)
	assert.Equal(t, "no sugar", order.Notes)
}

func TestSubmit_EmptyCart(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestService(coffeeMenu(), orders)

	_, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{})

	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 0, orders.createCalls)
}

func TestSubmit_UnknownItem(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestService(coffeeMenu(), orders)

	_, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		Items: []interfaces.SubmitOrderItem{{MenuItemID: 99, Quantity: 1}},
	})

	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "99")
	assert.Equal(t, 0, orders.createCalls, "nothing may be persisted on a rejected cart")
}

func TestSubmit_UnavailableItem(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestService(coffeeMenu(), orders)

	// Tea exists in the catalog but is switched off.
	_, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		Items: []interfaces.SubmitOrderItem{{MenuItemID: 6, Quantity: 1}},
	})

	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "6")
	assert.Equal(t, 0, orders.createCalls)
}

func TestSubmit_ZeroQuantity(t *testing.T) {
	svc := newTestService(coffeeMenu(), newFakeOrderRepo())

	_, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		Items: []interfaces.SubmitOrderItem{{MenuItemID: 5, Quantity: 0}},
	})

	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestSubmit_PriceSnapshot(t *testing.T) {
	menu := coffeeMenu()
	orders := newFakeOrderRepo()
	svc := newTestService(menu, orders)

	order, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		Items: []interfaces.SubmitOrderItem{{MenuItemID: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	// A later catalog price change must not touch the stored snapshot.
	item := menu.items[5]
	item.Price = 99.99
	menu.items[5] = item

	stored, err := svc.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.50, stored.Items[0].Price, 1e-9)
}

func TestSetStatus(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestService(coffeeMenu(), orders)

	submitted, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		Items: []interfaces.SubmitOrderItem{{MenuItemID: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	// Every recognized status is reachable from any other, backward included.
	for _, status := range []string{"confirmed", "preparing", "ready", "delivered", "pending", "cancelled"} {
		updated, err := svc.SetStatus(context.Background(), submitted.ID, status)
		require.NoError(t, err, status)
		assert.Equal(t, domain.Status(status), updated.Status)
	}
}

func TestSetStatus_RefreshesUpdatedAt(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestService(coffeeMenu(), orders)

	submitted, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		Items: []interfaces.SubmitOrderItem{{MenuItemID: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	before := submitted.UpdatedAt
	time.Sleep(time.Millisecond)

	updated, err := svc.SetStatus(context.Background(), submitted.ID, "ready")
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestSetStatus_Invalid(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestService(coffeeMenu(), orders)

	submitted, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		Items: []interfaces.SubmitOrderItem{{MenuItemID: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), submitted.ID, "banana")
	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)

	stored, err := svc.Get(context.Background(), submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status, "status must be unchanged after a rejected update")
}

func TestSetStatus_NotFound(t *testing.T) {
	svc := newTestService(coffeeMenu(), newFakeOrderRepo())

	_, err := svc.SetStatus(context.Background(), 42, "ready")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(coffeeMenu(), newFakeOrderRepo())

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_BeyondLastPage(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestService(coffeeMenu(), orders)

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
			Items: []interfaces.SubmitOrderItem{{MenuItemID: 5, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), interfaces.ListOrdersQuery{Page: 7, PerPage: 2})
	require.NoError(t, err)

	assert.Empty(t, page.Orders)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 7, page.CurrentPage)
}

func TestList_Defaults(t *testing.T) {
	svc := newTestService(coffeeMenu(), newFakeOrderRepo())

	page, err := svc.List(context.Background(), interfaces.ListOrdersQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.Pages)
	assert.NotNil(t, page.Orders)
}

func TestList_UnknownStatusFilterMatchesNothing(t *testing.T) {
	orders := newFakeOrderRepo()
	svc := newTestService(coffeeMenu(), orders)

	_, err := svc.Submit(context.Background(), interfaces.SubmitOrderCommand{
		Items: []interfaces.SubmitOrderItem{{MenuItemID: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	page, err := svc.List(context.Background(), interfaces.ListOrdersQuery{Status: "banana"})
	require.NoError(t, err)
	assert.Empty(t, page.Orders)
	assert.Equal(t, 0, page.Total)
}
