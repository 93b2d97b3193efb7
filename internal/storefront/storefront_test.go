package storefront

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ontaste/internal/cart"
	"github.com/roach88/ontaste/internal/catalog"
	"github.com/roach88/ontaste/internal/ids"
	"github.com/roach88/ontaste/internal/order"
	"github.com/roach88/ontaste/internal/session"
	"github.com/roach88/ontaste/internal/state"
	"github.com/roach88/ontaste/internal/store"
	"github.com/roach88/ontaste/internal/testutil"
)

func testOptions() Options {
	return Options{
		Clock:  testutil.NewStepClock(testutil.DefaultEpoch, 0),
		IDs:    ids.NewSequenceGenerator("id"),
		Logger: testutil.DiscardLogger(),
	}
}

func openMemory(t *testing.T) (*Storefront, *store.Memory) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	mem := store.NewMemory()
	f := Open(context.Background(), store.NewAdapter(mem, testutil.DiscardLogger()), cat, testOptions())
	return f, mem
}

func signIn(t *testing.T, f *Storefront) {
	t.Helper()
	_, err := f.Session.Register(context.Background(), "A", "a@x.com", "p1", "p1")
	require.NoError(t, err)
}

func TestOpen_EmptyStore(t *testing.T) {
	f, mem := openMemory(t)

	snap := f.Snapshot()
	assert.Empty(t, snap.Users)
	assert.Nil(t, snap.CurrentUser)
	assert.Empty(t, snap.Cart)
	assert.Empty(t, snap.Orders)
	assert.Equal(t, 0, mem.Writes())
	assert.Equal(t, 6, f.Catalog().Len())
}

func TestAddItem_SameNameMerges(t *testing.T) {
	ctx := context.Background()
	f, _ := openMemory(t)
	signIn(t, f)

	require.NoError(t, f.Cart.AddItem(ctx, "Latte", 220, "latte.png"))
	require.NoError(t, f.Cart.AddItem(ctx, "Latte", 220, "latte.png"))

	sum := f.CartSummary()
	require.Len(t, sum.Items, 1)
	assert.Equal(t, 2, sum.Items[0].Quantity)
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, 440.0, sum.Total)
}

func TestChangeQuantity_NegativeDeltaRemovesLine(t *testing.T) {
	ctx := context.Background()
	f, _ := openMemory(t)
	signIn(t, f)

	require.NoError(t, f.Cart.AddItem(ctx, "Latte", 220, "latte.png"))
	require.NoError(t, f.Cart.AddItem(ctx, "Latte", 220, "latte.png"))
	id := f.Cart.Items()[0].ID

	require.NoError(t, f.Cart.ChangeQuantity(ctx, id, -5))
	assert.Empty(t, f.Cart.Items())
}

func TestPlaceOrder_PickupWindow(t *testing.T) {
	ctx := context.Background()
	f, _ := openMemory(t)
	signIn(t, f)
	require.NoError(t, f.AddMenuItem(ctx, "2"))

	_, err := f.Orders.PlaceOrder(ctx, "07:59")
	require.ErrorIs(t, err, order.ErrPickupTimeOutOfRange)
	assert.Len(t, f.Cart.Items(), 1)

	o, err := f.Orders.PlaceOrder(ctx, "08:00")
	require.NoError(t, err)
	assert.Equal(t, state.StatusProcessing, o.Status)
	assert.Equal(t, 220.0, o.Total)
	assert.Empty(t, f.Cart.Items())
	assert.Len(t, f.Orders.All(), 1)
}

func TestRegister_DuplicateEmailKeepsOneUser(t *testing.T) {
	ctx := context.Background()
	f, _ := openMemory(t)

	_, err := f.Session.Register(ctx, "A", "a@x.com", "p1", "p1")
	require.NoError(t, err)
	_, err = f.Session.Register(ctx, "B", "a@x.com", "p2", "p2")
	require.ErrorIs(t, err, session.ErrDuplicateEmail)

	users := f.Session.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "A", users[0].Name)
}

func TestLogin_WrongPasswordLeavesSignedOut(t *testing.T) {
	ctx := context.Background()
	f, _ := openMemory(t)
	signIn(t, f)
	require.NoError(t, f.Session.Logout(ctx))

	_, err := f.Session.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, session.ErrInvalidCredentials)

	_, ok := f.Session.Current()
	assert.False(t, ok)
}

func TestAddMenuItem(t *testing.T) {
	ctx := context.Background()
	f, _ := openMemory(t)

	err := f.AddMenuItem(ctx, "1")
	require.ErrorIs(t, err, cart.ErrNotAuthenticated)

	signIn(t, f)
	require.NoError(t, f.AddMenuItem(ctx, "1"))
	require.NoError(t, f.AddMenuItem(ctx, "1"))
	require.NoError(t, f.AddMenuItem(ctx, "6"))

	err = f.AddMenuItem(ctx, "99")
	require.ErrorIs(t, err, cart.ErrInvalidItem)

	sum := f.CartSummary()
	require.Len(t, sum.Items, 2)
	assert.Equal(t, "Капучино", sum.Items[0].Name)
	assert.Equal(t, 2, sum.Items[0].Quantity)
	assert.Equal(t, "Брауни", sum.Items[1].Name)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 580.0, sum.Total)
}

func TestOrderImmutableAfterCartChanges(t *testing.T) {
	ctx := context.Background()
	f, _ := openMemory(t)
	signIn(t, f)
	require.NoError(t, f.AddMenuItem(ctx, "1"))
	require.NoError(t, f.AddMenuItem(ctx, "3"))

	placed, err := f.Orders.PlaceOrder(ctx, "12:30")
	require.NoError(t, err)

	require.NoError(t, f.AddMenuItem(ctx, "1"))
	require.NoError(t, f.Cart.ChangeQuantity(ctx, f.Cart.Items()[0].ID, 4))
	require.NoError(t, f.AddMenuItem(ctx, "5"))

	orders := f.Orders.ForCurrentUser()
	require.Len(t, orders, 1)
	stored := orders[0]
	assert.Equal(t, placed.ID, stored.ID)
	assert.Equal(t, placed.Items, stored.Items)
	assert.Equal(t, 380.0, stored.Total)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, 1, stored.Items[0].Quantity)
}

func TestReload_RestoresFlushedState(t *testing.T) {
	ctx := context.Background()
	f, _ := openMemory(t)
	signIn(t, f)
	require.NoError(t, f.AddMenuItem(ctx, "2"))
	before := f.Snapshot()

	f.Reload(ctx)

	assert.Equal(t, before, f.Snapshot())
	// Engines still see the reloaded state.
	require.NoError(t, f.AddMenuItem(ctx, "2"))
	assert.Equal(t, 2, f.Cart.ItemCount())
}

func TestReload_DropsInvalidLines(t *testing.T) {
	ctx := context.Background()
	f, mem := openMemory(t)
	signIn(t, f)

	mem.Put(store.SlotCart, `[
		{"id":"a","name":"Латте","price":220,"image":"latte.png","quantity":1,"addedAt":"2026-01-02T09:00:00Z"},
		{"id":"b","name":"Bad","price":0,"image":"x.png","quantity":1,"addedAt":"2026-01-02T09:00:00Z"},
		{"id":"c","name":"Bad","price":10,"image":"x.png","quantity":0,"addedAt":"2026-01-02T09:00:00Z"}
	]`)
	f.Reload(ctx)

	items := f.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestFlushFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	f, mem := openMemory(t)
	signIn(t, f)

	mem.FailWrites(errors.New("quota exceeded"))
	err := f.AddMenuItem(ctx, "4")
	require.ErrorIs(t, err, store.ErrWriteFailed)
	assert.Len(t, f.Cart.Items(), 1)

	mem.FailWrites(nil)
	require.NoError(t, f.Flush(ctx))
	f.Reload(ctx)
	assert.Len(t, f.Cart.Items(), 1)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ontaste.db")
	cat, err := catalog.Default()
	require.NoError(t, err)

	db, err := store.Open(path)
	require.NoError(t, err)

	f := Open(ctx, store.NewAdapter(db, testutil.DiscardLogger()), cat, testOptions())
	signIn(t, f)
	require.NoError(t, f.AddMenuItem(ctx, "1"))
	require.NoError(t, f.AddMenuItem(ctx, "5"))
	_, err = f.Orders.PlaceOrder(ctx, "19:59")
	require.NoError(t, err)
	require.NoError(t, f.AddMenuItem(ctx, "2"))
	want := f.Snapshot()
	require.NoError(t, db.Close())

	db, err = store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	g := Open(ctx, store.NewAdapter(db, testutil.DiscardLogger()), cat, testOptions())
	assert.Equal(t, want, g.Snapshot())

	orders := g.Orders.ForCurrentUser()
	require.Len(t, orders, 1)
	assert.Equal(t, 400.0, orders[0].Total)
	assert.Equal(t, "02.01.2026", orders[0].Date)
}
