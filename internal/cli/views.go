package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/roach88/ontaste/internal/catalog"
	"github.com/roach88/ontaste/internal/money"
	"github.com/roach88/ontaste/internal/state"
	"github.com/roach88/ontaste/internal/storefront"
)

// userView is a user without the password.
type userView struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
}

func newUserView(u state.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, RegistrationDate: u.RegistrationDate}
}

func (v userView) String() string {
	return fmt.Sprintf("%s <%s>", v.Name, v.Email)
}

type whoamiView struct {
	SignedIn bool      `json:"signed_in"`
	User     *userView `json:"user,omitempty"`
}

func (v whoamiView) String() string {
	if !v.SignedIn {
		return "Вы не вошли в систему"
	}
	return v.User.String()
}

type menuView struct {
	Category string             `json:"category"`
	Items    []catalog.MenuItem `json:"items"`
}

func (v menuView) String() string {
	if len(v.Items) == 0 {
		return "Товары в этой категории отсутствуют"
	}
	var b strings.Builder
	for i, m := range v.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-4s %-12s %s", m.ID, m.Name, money.Format(m.Price))
	}
	return b.String()
}

type categoriesView struct {
	Categories []string `json:"categories"`
}

func (v categoriesView) String() string {
	return strings.Join(v.Categories, "\n")
}

type cartView struct {
	storefront.CartSummary
}

func (v cartView) String() string {
	if len(v.Items) == 0 {
		return "Ваша корзина пуста"
	}
	var b strings.Builder
	for _, it := range v.Items {
		fmt.Fprintf(&b, "%s  %s × %d  %s\n", it.ID, it.Name, it.Quantity, money.Format(it.Subtotal()))
	}
	b.WriteString(money.Total(v.Total))
	return b.String()
}

type orderView struct {
	state.Order
}

func (v orderView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s  Время: %s", v.Date, v.Status.Label(), money.Format(v.Total), v.PickupTime)
	for _, it := range v.Items {
		fmt.Fprintf(&b, "\n    %s × %d  %s", it.Name, it.Quantity, money.Format(it.Subtotal()))
	}
	return b.String()
}

type ordersView struct {
	SignedIn bool          `json:"signed_in"`
	Orders   []state.Order `json:"orders"`
}

func (v ordersView) String() string {
	if !v.SignedIn {
		return "Войдите в аккаунт, чтобы увидеть заказы"
	}
	if len(v.Orders) == 0 {
		return "У вас пока нет заказов"
	}
	parts := make([]string, len(v.Orders))
	for i, o := range v.Orders {
		parts[i] = orderView{o}.String()
	}
	return strings.Join(parts, "\n")
}
