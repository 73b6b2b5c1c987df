package pages

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// Manager is the single construction point for all page objects against one
// page handle. Each accessor constructs its page object on first use and
// returns the same instance from then on, so cross-references between page
// objects stay stable for the life of the Manager. Construction only stores
// the shared handle; no page object depends on another's state.
type Manager struct {
	t    *testing.T
	page playwright.Page
	opts Options

	home           *Home
	loginSignup    *LoginSignup
	signup         *Signup
	accountCreated *AccountCreated
	products       *Products
	product        *Product
	cart           *Cart
	checkout       *Checkout
	payment        *Payment
	header         *Header
	consent        *ConsentDialog
	cartModal      *CartModal
	checkoutModal  *CheckoutModal
	category       *Category
	brand          *Brand
}

// NewManager binds a Manager to one page handle. The handle is borrowed: the
// Manager never closes it.
func NewManager(t *testing.T, page playwright.Page, opts Options) *Manager {
	return &Manager{t: t, page: page, opts: opts}
}

// Page exposes the underlying handle for the rare escape hatch.
func (m *Manager) Page() playwright.Page {
	return m.page
}

func (m *Manager) Home() *Home {
	if m.home == nil {
		m.home = NewHome(m.t, m.page, m.opts)
	}
	return m.home
}

func (m *Manager) LoginSignup() *LoginSignup {
	if m.loginSignup == nil {
		m.loginSignup = NewLoginSignup(m.t, m.page, m.opts)
	}
	return m.loginSignup
}

func (m *Manager) Signup() *Signup {
	if m.signup == nil {
		m.signup = NewSignup(m.t, m.page, m.opts)
	}
	return m.signup
}

func (m *Manager) AccountCreated() *AccountCreated {
	if m.accountCreated == nil {
		m.accountCreated = NewAccountCreated(m.t, m.page, m.opts)
	}
	return m.accountCreated
}

func (m *Manager) Products() *Products {
	if m.products == nil {
		m.products = NewProducts(m.t, m.page, m.opts)
	}
	return m.products
}

func (m *Manager) Product() *Product {
	if m.product == nil {
		m.product = NewProduct(m.t, m.page, m.opts)
	}
	return m.product
}

func (m *Manager) Cart() *Cart {
	if m.cart == nil {
		m.cart = NewCart(m.t, m.page, m.opts)
	}
	return m.cart
}

func (m *Manager) Checkout() *Checkout {
	if m.checkout == nil {
		m.checkout = NewCheckout(m.t, m.page, m.opts)
	}
	return m.checkout
}

func (m *Manager) Payment() *Payment {
	if m.payment == nil {
		m.payment = NewPayment(m.t, m.page, m.opts)
	}
	return m.payment
}

func (m *Manager) Header() *Header {
	if m.header == nil {
		m.header = NewHeader(m.t, m.page, m.opts)
	}
	return m.header
}

func (m *Manager) ConsentDialog() *ConsentDialog {
	if m.consent == nil {
		m.consent = NewConsentDialog(m.t, m.page)
	}
	return m.consent
}

func (m *Manager) CartModal() *CartModal {
	if m.cartModal == nil {
		m.cartModal = NewCartModal(m.t, m.page, m.opts)
	}
	return m.cartModal
}

func (m *Manager) CheckoutModal() *CheckoutModal {
	if m.checkoutModal == nil {
		m.checkoutModal = NewCheckoutModal(m.t, m.page, m.opts)
	}
	return m.checkoutModal
}

func (m *Manager) Category() *Category {
	if m.category == nil {
		m.category = NewCategory(m.t, m.page, m.opts)
	}
	return m.category
}

func (m *Manager) Brand() *Brand {
	if m.brand == nil {
		m.brand = NewBrand(m.t, m.page, m.opts)
	}
	return m.brand
}
