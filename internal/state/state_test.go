package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsEmpty(t *testing.T) {
	st := New()
	assert.Empty(t, st.Users)
	assert.Empty(t, st.Cart)
	assert.Empty(t, st.Orders)
	assert.False(t, st.Authenticated())
}

func TestUserByEmail_IsCaseSensitive(t *testing.T) {
	st := New()
	st.Users = append(st.Users, User{ID: "u1", Email: "a@x.com"})

	_, ok := st.UserByEmail("a@x.com")
	assert.True(t, ok)
	_, ok = st.UserByEmail("A@x.com")
	assert.False(t, ok)
}

func TestSetCurrentUser_HoldsCopy(t *testing.T) {
	st := New()
	u := User{ID: "u1", Name: "A"}
	st.SetCurrentUser(u)
	u.Name = "changed"

	require.True(t, st.Authenticated())
	assert.Equal(t, "A", st.CurrentUser.Name)
}

func TestCartIndexes(t *testing.T) {
	st := New()
	st.Cart = []CartItem{{ID: "1", Name: "Латте"}, {ID: "2", Name: "Салат"}}

	assert.Equal(t, 1, st.CartIndexByName("Салат"))
	assert.Equal(t, -1, st.CartIndexByName("салат"))
	assert.Equal(t, 0, st.CartIndexByID("1"))
	assert.Equal(t, -1, st.CartIndexByID("9"))
}

func TestClone_IsDeep(t *testing.T) {
	st := New()
	st.SetCurrentUser(User{ID: "u1"})
	st.Cart = []CartItem{{ID: "1", Name: "Латте", Quantity: 1}}
	st.Orders = []Order{{ID: "o1", Items: []CartItem{{ID: "1", Quantity: 2}}}}

	c := st.Clone()
	c.CurrentUser.ID = "other"
	c.Cart[0].Quantity = 9
	c.Orders[0].Items[0].Quantity = 9

	assert.Equal(t, "u1", st.CurrentUser.ID)
	assert.Equal(t, 1, st.Cart[0].Quantity)
	assert.Equal(t, 2, st.Orders[0].Items[0].Quantity)
}

func TestOrderStatusLabel(t *testing.T) {
	assert.Equal(t, "В обработке", StatusProcessing.Label())
	assert.Equal(t, "ready", OrderStatus("ready").Label())
}

func TestCartItemSubtotal(t *testing.T) {
	assert.Equal(t, 440.0, CartItem{Price: 220, Quantity: 2}.Subtotal())
}
