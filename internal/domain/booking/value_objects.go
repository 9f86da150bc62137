package booking

import (
	"errors"

	"mountworks/internal/domain/worker"

	"github.com/google/uuid"
)

var (
	ErrNoLineItems      = errors.New("booking requires at least one service line item")
	ErrInvalidLineItem  = errors.New("invalid service line item")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrCustomerRequired = errors.New("either a registered user or a guest contact is required")
	ErrCustomerConflict = errors.New("registered user and guest contact are mutually exclusive")
	ErrGuestIncomplete  = errors.New("guest contact requires name and email")
	ErrMissingAddress   = errors.New("service address is required")
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// LineItem is one selected service (e.g. "TV mount, 55-64 inch") at
// checkout-time unit price.
type LineItem struct {
	ServiceID      uuid.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int32
}

func (li LineItem) Validate() error {
	if li.ServiceID == uuid.Nil || li.Name == "" || li.Quantity <= 0 || li.UnitPriceCents < 0 {
		return ErrInvalidLineItem
	}
	return nil
}

func (li LineItem) SubtotalCents() int64 {
	return li.UnitPriceCents * int64(li.Quantity)
}

// TotalOf sums line items. The booking total is fixed to this sum at
// creation and immutable afterwards.
func TotalOf(items []LineItem) (Money, error) {
	if len(items) == 0 {
		return Money{}, ErrNoLineItems
	}
	var sum int64
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return Money{}, err
		}
		sum += li.SubtotalCents()
	}
	return NewMoney(sum)
}

type GuestContact struct {
	Name  string
	Email string
	Phone string
}

// Customer is a registered user OR an embedded guest record, never both.
type Customer struct {
	userID *uuid.UUID
	guest  *GuestContact
}

func NewRegisteredCustomer(userID uuid.UUID) (Customer, error) {
	if userID == uuid.Nil {
		return Customer{}, ErrCustomerRequired
	}
	id := userID
	return Customer{userID: &id}, nil
}

func NewGuestCustomer(guest GuestContact) (Customer, error) {
	if guest.Name == "" || guest.Email == "" {
		return Customer{}, ErrGuestIncomplete
	}
	g := guest
	return Customer{guest: &g}, nil
}

func (c Customer) UserID() *uuid.UUID   { return c.userID }
func (c Customer) Guest() *GuestContact { return c.guest }
func (c Customer) IsGuest() bool        { return c.guest != nil }

type Location struct {
	address string
	zip     string
}

func NewLocation(address, zip string) (Location, error) {
	if address == "" {
		return Location{}, ErrMissingAddress
	}
	nz, err := worker.NormalizeZip(zip)
	if err != nil {
		return Location{}, err
	}
	return Location{address: address, zip: nz}, nil
}

func (l Location) Address() string { return l.address }
func (l Location) Zip() string     { return l.zip }
