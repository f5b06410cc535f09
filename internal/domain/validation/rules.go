// Package validation holds the pure budget validation engine. Every function
// returns an ordered list of human-readable messages; an empty list means the
// value is valid. Nothing here panics and nothing here touches storage, so
// callers decide whether a non-empty list blocks submission.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"orcafacil/internal/domain/entities"
)

// Validation messages are user-facing and kept in Portuguese.
const (
	MsgClientNameRequired    = "Nome do cliente é obrigatório"
	MsgClientCompanyRequired = "Empresa do cliente é obrigatória"
	MsgClientPhoneRequired   = "WhatsApp é obrigatório"
	MsgClientPhoneInvalid    = "Número de WhatsApp inválido"
	MsgMaterialNameRequired  = "Produto é obrigatório"
	MsgMaterialBrandRequired = "Marca é obrigatória"
	MsgMaterialQuantity      = "Quantidade deve ser maior que zero"
	MsgMaterialUnitRequired  = "Unidade de medida é obrigatória"
	MsgMaterialUnitPrice     = "Valor unitário deve ser maior que zero"
	MsgBudgetNeedsMaterial   = "Adicione pelo menos um material"
)

var (
	nonDigits = regexp.MustCompile(`\D`)
	// Brazilian mobile number: optional country code 55, 2-digit area code,
	// 5-digit prefix, 4-digit suffix. Checked after stripping non-digits.
	phonePattern = regexp.MustCompile(`^(55)?\d{2}\d{5}\d{4}$`)
)

// ValidateClient checks name, company and phone, in that order.
func ValidateClient(c entities.Client) []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, MsgClientNameRequired)
	}
	if strings.TrimSpace(c.Company) == "" {
		errs = append(errs, MsgClientCompanyRequired)
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs = append(errs, MsgClientPhoneRequired)
	} else if !phonePattern.MatchString(nonDigits.ReplaceAllString(c.Phone, "")) {
		errs = append(errs, MsgClientPhoneInvalid)
	}
	return errs
}

// ValidateMaterial checks name, brand, quantity, unit and unit price, in
// that order.
func ValidateMaterial(m entities.Material) []string {
	var errs []string
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, MsgMaterialNameRequired)
	}
	if strings.TrimSpace(m.Brand) == "" {
		errs = append(errs, MsgMaterialBrandRequired)
	}
	if m.Quantity <= 0 {
		errs = append(errs, MsgMaterialQuantity)
	}
	if strings.TrimSpace(m.Unit) == "" {
		errs = append(errs, MsgMaterialUnitRequired)
	}
	if m.UnitPrice <= 0 {
		errs = append(errs, MsgMaterialUnitPrice)
	}
	return errs
}

// ValidateBudget composes client and item validation: client messages first,
// then each item's messages prefixed with its 1-based position, then the
// empty-item-list message when there is nothing to quote.
func ValidateBudget(b entities.Budget) []string {
	errs := ValidateClient(b.Client)
	for i, item := range b.Items {
		for _, msg := range ValidateMaterial(item) {
			errs = append(errs, fmt.Sprintf("Material %d: %s", i+1, msg))
		}
	}
	if len(b.Items) == 0 {
		errs = append(errs, MsgBudgetNeedsMaterial)
	}
	return errs
}

// CalculateTotalPrice is the single source of line item totals.
func CalculateTotalPrice(unitPrice, quantity float64) float64 {
	return unitPrice * quantity
}

// FormatPhone normalizes a Brazilian mobile number to "(AA) BBBBB-CCCC".
// The transform strips every non-digit first, so feeding it its own output
// produces the same string. Input that does not look like a mobile number is
// returned with non-digits stripped but otherwise untouched.
func FormatPhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) == 13 && strings.HasPrefix(digits, "55") {
		digits = digits[2:]
	}
	if len(digits) != 11 {
		return digits
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
}
