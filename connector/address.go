package connector

import "github.com/goliatone/go-connectors/core"

// CountryAlpha2 is an ISO 3166-1 alpha-2 country code.
type CountryAlpha2 string

type PaymentAddress struct {
	Billing  *Address `json:"billing,omitempty"`
	Shipping *Address `json:"shipping,omitempty"`
}

type Address struct {
	Address *AddressDetails `json:"address,omitempty"`
	Phone   *PhoneDetails   `json:"phone,omitempty"`
}

type AddressDetails struct {
	City      *string        `json:"city,omitempty"`
	Country   *CountryAlpha2 `json:"country,omitempty"`
	Line1     *Secret        `json:"line1,omitempty"`
	Line2     *Secret        `json:"line2,omitempty"`
	Line3     *Secret        `json:"line3,omitempty"`
	Zip       *Secret        `json:"zip,omitempty"`
	State     *Secret        `json:"state,omitempty"`
	FirstName *Secret        `json:"first_name,omitempty"`
	LastName  *Secret        `json:"last_name,omitempty"`
}

type PhoneDetails struct {
	Number      *Secret `json:"number,omitempty"`
	CountryCode *string `json:"country_code,omitempty"`
}

type AddressDetailsAccessor interface {
	GetFirstName() (Secret, error)
	GetLastName() (Secret, error)
	GetLine1() (Secret, error)
	GetLine2() (Secret, error)
	GetCity() (string, error)
	GetZip() (Secret, error)
	GetCountry() (CountryAlpha2, error)
	GetCombinedAddressLine() (Secret, error)
}

type PhoneDetailsAccessor interface {
	GetNumber() (Secret, error)
	GetCountryCode() (string, error)
}

func (a AddressDetails) GetFirstName() (Secret, error) {
	return required(a.FirstName, "address.first_name")
}

func (a AddressDetails) GetLastName() (Secret, error) {
	return required(a.LastName, "address.last_name")
}

func (a AddressDetails) GetLine1() (Secret, error) {
	return required(a.Line1, "address.line1")
}

func (a AddressDetails) GetLine2() (Secret, error) {
	return required(a.Line2, "address.line2")
}

func (a AddressDetails) GetCity() (string, error) {
	return required(a.City, "address.city")
}

func (a AddressDetails) GetZip() (Secret, error) {
	return required(a.Zip, "address.zip")
}

func (a AddressDetails) GetCountry() (CountryAlpha2, error) {
	return required(a.Country, "address.country")
}

// GetCombinedAddressLine joins line1 and line2 with a comma. Both lines are
// required.
func (a AddressDetails) GetCombinedAddressLine() (Secret, error) {
	line1, err := a.GetLine1()
	if err != nil {
		return "", err
	}
	line2, err := a.GetLine2()
	if err != nil {
		return "", err
	}
	return Secret(line1.Peek() + "," + line2.Peek()), nil
}

func (p PhoneDetails) GetNumber() (Secret, error) {
	return required(p.Number, "billing.phone.number")
}

func (p PhoneDetails) GetCountryCode() (string, error) {
	return required(p.CountryCode, "billing.phone.country_code")
}

// required dereferences value or reports fieldName as missing.
func required[T any](value *T, fieldName string) (T, error) {
	if value == nil {
		var zero T
		return zero, core.MissingField(fieldName)
	}
	return *value, nil
}
