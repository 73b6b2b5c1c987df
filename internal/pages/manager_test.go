package pages

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testOptions() Options {
	return Options{
		BaseURL: "https://example.test",
		Timeout: 5 * time.Second,
		Rand:    rand.New(rand.NewSource(1)),
	}
}

// Constructors only store the page handle, so a nil handle is fine as long
// as no page-object method runs.
func TestManagerReferenceStability(t *testing.T) {
	m := NewManager(t, nil, testOptions())

	home := m.Home()
	assert.Same(t, home, m.Home(), "Home accessor must return the cached instance")

	// Interleaving other accessors must not disturb the cache.
	products := m.Products()
	cart := m.Cart()
	assert.Same(t, home, m.Home())
	assert.Same(t, products, m.Products())
	assert.Same(t, cart, m.Cart())
}

func TestManagerLazyConstruction(t *testing.T) {
	m := NewManager(t, nil, testOptions())

	assert.Nil(t, m.home, "no page object may exist before its accessor is called")
	assert.Nil(t, m.products)
	assert.Nil(t, m.header)

	m.Header()
	assert.NotNil(t, m.header)
	assert.Nil(t, m.home, "unrelated accessors must not trigger construction")
	assert.Nil(t, m.products)
}

func TestManagerAccessorsOrderIndependent(t *testing.T) {
	// Accessors must be safe in any order; none depends on another's state.
	m := NewManager(t, nil, testOptions())
	assert.NotNil(t, m.Payment())
	assert.NotNil(t, m.CheckoutModal())
	assert.NotNil(t, m.Brand())
	assert.NotNil(t, m.Category())
	assert.NotNil(t, m.ConsentDialog())
	assert.NotNil(t, m.AccountCreated())
	assert.NotNil(t, m.LoginSignup())
	assert.NotNil(t, m.Signup())
	assert.NotNil(t, m.Product())
	assert.NotNil(t, m.Checkout())
	assert.NotNil(t, m.CartModal())
	assert.NotNil(t, m.Home())
	assert.NotNil(t, m.Products())
	assert.NotNil(t, m.Cart())
	assert.NotNil(t, m.Header())
}

func TestCartItemLineTotal(t *testing.T) {
	item := CartItem{Name: "Blue Top", Price: 500, Quantity: 3}
	assert.Equal(t, 1500, item.LineTotal())
}
