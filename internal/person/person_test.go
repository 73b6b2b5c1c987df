package person

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPopulatesEveryField(t *testing.T) {
	p := New(1)

	assert.Contains(t, Titles, p.Title)
	assert.NotEmpty(t, p.Name)
	assert.NotEmpty(t, p.Email)
	assert.NotEmpty(t, p.Password)
	assert.NotEmpty(t, p.Day)
	assert.NotEmpty(t, p.Month)
	assert.NotEmpty(t, p.Year)
	assert.NotEmpty(t, p.FirstName)
	assert.NotEmpty(t, p.LastName)
	assert.NotEmpty(t, p.Company)
	assert.NotEmpty(t, p.Address1)
	assert.NotEmpty(t, p.Address2)
	assert.Contains(t, Countries, p.Country)
	assert.NotEmpty(t, p.State)
	assert.NotEmpty(t, p.City)
	assert.NotEmpty(t, p.Zipcode)
	assert.NotEmpty(t, p.Mobile)
}

func TestNewIsDeterministicForSeedExceptEmail(t *testing.T) {
	a := New(42)
	b := New(42)

	// Email carries a unique fragment on purpose.
	assert.NotEqual(t, a.Email, b.Email)

	a.Email, b.Email = "", ""
	assert.Equal(t, a, b)
}

func TestNewEmailIsLowercase(t *testing.T) {
	p := New(7)
	assert.Equal(t, strings.ToLower(p.Email), p.Email)
}

func TestNewAppliesOverrides(t *testing.T) {
	p := New(3,
		WithEmail("fixed@example.com"),
		WithPassword("hunter22!"),
		WithCountry("Canada"),
	)

	require.Equal(t, "fixed@example.com", p.Email)
	require.Equal(t, "hunter22!", p.Password)
	require.Equal(t, "Canada", p.Country)
}

func TestFullName(t *testing.T) {
	p := New(5)
	p.Title = "Mr."
	p.FirstName = "John"
	p.LastName = "Doe"
	assert.Equal(t, "Mr. John Doe", p.FullName())
}
