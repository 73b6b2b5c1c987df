// Package person generates the randomized test identities used for
// registration flows against the target site.
package person

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Titles accepted by the registration form.
var Titles = []string{"Mr.", "Mrs."}

// Countries available in the registration form's country select.
var Countries = []string{
	"United States", "Canada", "India", "Australia",
	"New Zealand", "Israel", "Singapore",
}

// Person is an immutable test identity. It lives for the duration of one test.
type Person struct {
	Title string

	Name     string
	Email    string
	Password string

	Day   string
	Month string
	Year  string

	FirstName string
	LastName  string
	Company   string

	Address1 string
	Address2 string
	Country  string
	State    string
	City     string
	Zipcode  string
	Mobile   string

	Newsletter bool
	Offers     bool
}

// FullName returns the name as rendered by the site's address blocks.
func (p Person) FullName() string {
	return p.Title + " " + p.FirstName + " " + p.LastName
}

// Option overrides a single generated field.
type Option func(*Person)

// WithEmail forces a specific email address.
func WithEmail(email string) Option {
	return func(p *Person) { p.Email = email }
}

// WithPassword forces a specific password.
func WithPassword(password string) Option {
	return func(p *Person) { p.Password = password }
}

// WithCountry forces a specific country.
func WithCountry(country string) Option {
	return func(p *Person) { p.Country = country }
}

// New generates a Person from the given seed. The same seed always produces
// the same identity apart from the email, which carries a unique fragment so
// repeated registrations never collide.
func New(seed uint64, opts ...Option) Person {
	f := gofakeit.New(seed)

	firstName := f.FirstName()
	lastName := f.LastName()

	dob := f.DateRange(
		time.Date(time.Now().Year()-65, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(time.Now().Year()-18, time.December, 31, 0, 0, 0, 0, time.UTC),
	)

	p := Person{
		Title: f.RandomString(Titles),

		Name:     firstName,
		Email:    uniqueEmail(firstName, lastName),
		Password: f.Password(true, true, true, true, false, 12),

		Day:   fmt.Sprintf("%d", dob.Day()),
		Month: dob.Month().String(),
		Year:  fmt.Sprintf("%d", dob.Year()),

		FirstName: firstName,
		LastName:  lastName,
		Company:   f.Company(),

		Address1: f.Street(),
		Address2: fmt.Sprintf("Apt. %d", f.IntRange(1, 999)),
		Country:  f.RandomString(Countries),
		State:    f.State(),
		City:     f.City(),
		Zipcode:  f.Zip(),
		Mobile:   f.Phone(),

		Newsletter: false,
		Offers:     false,
	}

	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func uniqueEmail(firstName, lastName string) string {
	tag := strings.Split(uuid.NewString(), "-")[0]
	return strings.ToLower(fmt.Sprintf("%s.%s.%s@mailinator.com", firstName, lastName, tag))
}
