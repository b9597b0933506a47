package razorpay

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

var (
	validate = newValidator("validate")
	// decodeValidate checks decoded responses against their decode tags.
	decodeValidate = newValidator("decode")
)

func newValidator(tagName string) *validator.Validate {
	v := validator.New()
	v.SetTagName(tagName)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	v.RegisterCustomTypeFunc(idValue,
		CardID{}, ItemID{}, PlanID{}, AddonID{}, OrderID{}, OfferID{}, BatchID{},
		RefundID{}, AccountID{}, AddressID{}, DisputeID{}, InvoiceID{}, PaymentID{},
		CustomerID{}, DowntimeID{}, DocumentID{}, TransferID{}, LineItemID{},
		AdjustmentID{}, SettlementID{}, SubscriptionID{}, InstantSettlementID{},
		InstantSettlementPayoutID{},
	)
	return v
}

// idValue lets validation tags such as required see the raw identifier.
func idValue(field reflect.Value) any {
	if s, ok := field.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return nil
}

// validateParams runs struct validation on request parameters before they
// are sent. A nil pointer is accepted so optional payloads can be omitted.
func validateParams(params any) error {
	if params == nil {
		return nil
	}
	rv := reflect.ValueOf(params)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if err := validate.Struct(rv.Interface()); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if details := fieldErrors(err); details != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

// fieldErrors maps each failed field to a readable message. It returns nil
// when err does not carry field errors.
func fieldErrors(err error) map[string]string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	details := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		details[fieldPath(fieldErr)] = validationMessage(fieldErr)
	}
	return details
}

// fieldPath drops the root struct name so nested fields read like the
// JSON they came from, e.g. item.amount. Generic root names such as
// Collection[pkg.Order] carry dots of their own and are skipped whole.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	depth := 0
	for i, r := range ns {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case '.':
			if depth == 0 {
				return ns[i+1:]
			}
		}
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "email":
		return "must be a valid email"
	case "url", "http_url":
		return "must be a valid url"
	}
	return "is invalid"
}
