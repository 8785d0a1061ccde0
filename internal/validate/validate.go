package validate

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	vv := validator.New(validator.WithRequiredStructEnabled())
	vv.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return vv
}

// Error lists the fields that failed their presence checks.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Struct runs the `validate` tags on a domain record. Only presence checks
// are declared there; anything else is accepted as-is.
func Struct(rec any) error {
	err := v.Struct(rec)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &Error{}
	for _, fe := range ve {
		out.Fields = append(out.Fields, fieldName(fe))
	}
	return out
}

// fieldName turns "Order.products[0].quantity" into "products[0].quantity".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

// ID parses a positive integer resource identifier (path params).
func ID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Text trims s and reports whether anything is left.
func Text(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}
