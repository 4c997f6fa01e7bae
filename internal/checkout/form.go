package checkout

import (
	"regexp"
	"strings"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

// Field keys as surfaced to the presentation layer.
const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldEmail      = "email"
	FieldAddress    = "address"
	FieldCity       = "city"
	FieldState      = "state"
	FieldZipCode    = "zipCode"
	FieldCountry    = "country"
	FieldCardName   = "cardName"
	FieldCardNumber = "cardNumber"
	FieldExpDate    = "expDate"
	FieldCVV        = "cvv"
)

const (
	msgRequired   = "This field is required"
	msgEmail      = "Please enter a valid email address"
	msgCardNumber = "Please enter a valid 16-digit card number"
	msgExpDate    = "Please use MM/YY format"
	msgCVV        = "CVV must be 3 or 4 digits"
)

var (
	emailRe      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expDateRe    = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateForm checks every required field and the format rules,
// returning one message per failing field keyed by the Field constants.
// An empty map means the form is valid. Format rules only apply to
// non-blank fields, so a blank email reports required, not malformed.
func ValidateForm(form domain.CheckoutForm) map[string]string {
	errs := make(map[string]string)

	required := map[string]string{
		FieldFirstName:  form.FirstName,
		FieldLastName:   form.LastName,
		FieldEmail:      form.Email,
		FieldAddress:    form.Address,
		FieldCity:       form.City,
		FieldState:      form.State,
		FieldZipCode:    form.ZipCode,
		FieldCountry:    form.Country,
		FieldCardName:   form.CardName,
		FieldCardNumber: form.CardNumber,
		FieldExpDate:    form.ExpDate,
		FieldCVV:        form.CVV,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = msgRequired
		}
	}

	if form.Email != "" && !emailRe.MatchString(form.Email) {
		errs[FieldEmail] = msgEmail
	}

	if form.CardNumber != "" {
		digits := strings.Join(strings.Fields(form.CardNumber), "")
		if !cardNumberRe.MatchString(digits) {
			errs[FieldCardNumber] = msgCardNumber
		}
	}

	if form.ExpDate != "" && !expDateRe.MatchString(form.ExpDate) {
		errs[FieldExpDate] = msgExpDate
	}

	if form.CVV != "" && !cvvRe.MatchString(form.CVV) {
		errs[FieldCVV] = msgCVV
	}

	return errs
}
