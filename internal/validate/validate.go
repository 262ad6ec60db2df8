// Package validate checks transaction input before it is persisted.
package validate

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/finance-visualizer/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Amount is the amount as sent by a client. JSON numbers and strings
// are both accepted so that non-numeric input can be reported per field
// instead of failing the whole request body.
type Amount string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = ""
		return nil
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	*a = Amount(strings.TrimSpace(s))
	return nil
}

// Payload is a candidate transaction as submitted by a client.
type Payload struct {
	Amount      Amount `json:"amount" validate:"required,decimal,intdigits=12,minabs=0.01,maxscale=2" swaggertype:"primitive,string" example:"-14.03"` // Signed amount, negative for expenses
	Description string `json:"description" validate:"notblank" example:"Groceries"`                                                                    // Description of the transaction
	Category    string `json:"category" validate:"required,category" example:"Food & Dining"`                                                          // Category label
	Date        string `json:"date" validate:"required,date" example:"2024-01-05"`                                                                     // Date as YYYY-MM-DD or RFC 3339

	// JSON names of fields that were sent with a type other than string
	mistyped []string
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Only the fields present in data are set. A text field sent as another
// JSON type keeps its value and is reported as invalid by Validate, so
// that one bad field does not hide the problems of the others.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if value, ok := raw["amount"]; ok {
		if err := p.Amount.UnmarshalJSON(value); err != nil {
			return err
		}
	}

	texts := []struct {
		name  string
		field *string
	}{
		{"description", &p.Description},
		{"category", &p.Category},
		{"date", &p.Date},
	}

	for _, text := range texts {
		value, ok := raw[text.name]
		if !ok {
			continue
		}

		var typeError *json.UnmarshalTypeError
		err := json.Unmarshal(value, text.field)
		if errors.As(err, &typeError) {
			p.mistyped = append(p.mistyped, text.name)
		} else if err != nil {
			return err
		}
	}

	return nil
}

// Transaction is a transaction that passed validation.
type Transaction struct {
	Amount      decimal.Decimal
	Description string
	Category    models.Category
	Date        time.Time
}

// Model returns the transaction as a new, unsaved models.Transaction.
func (t Transaction) Model() models.Transaction {
	return models.Transaction{
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date,
	}
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"decimal": func(fl validator.FieldLevel) bool {
			_, err := decimal.NewFromString(fl.Field().String())
			return err == nil
		},
		"intdigits": func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			if err != nil {
				return false
			}
			return integerDigits(d) <= mustAtoi(fl.Param())
		},
		"minabs": func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			if err != nil {
				return false
			}

			// Comparing rescales both values to the smaller exponent, so
			// values with far fewer integer digits are rejected up front
			limit := decimal.RequireFromString(fl.Param())
			if integerDigits(d) < integerDigits(limit) {
				return false
			}
			return d.Abs().GreaterThanOrEqual(limit)
		},
		"maxscale": func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			if err != nil {
				return false
			}
			return d.Equal(d.Truncate(int32(mustAtoi(fl.Param()))))
		},
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		"category": func(fl validator.FieldLevel) bool {
			return models.Category(fl.Field().String()).Valid()
		},
		"date": func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		},
	}

	for tag, fn := range rules {
		if err := val.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return val
}

// integerDigits returns the number of digits before the decimal point.
// It is zero or negative for values below 1, e.g. -1 for 0.05.
func integerDigits(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}

	return d.NumDigits() + int(d.Exponent())
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate checks every field of the payload. On failure, the returned error
// is an *Error listing each failing field.
func Validate(p Payload) (Transaction, error) {
	e := &Error{Fields: make(map[string]string)}

	err := v.Struct(p)
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return Transaction{}, err
		}

		for _, fe := range fieldErrors {
			e.Fields[fe.Field()] = message(fe)
		}
	}

	for _, name := range p.mistyped {
		e.Fields[name] = typeMessage(name)
	}

	if len(e.Fields) > 0 {
		return Transaction{}, e
	}

	// All parsing below has been checked by the validator
	date, _ := ParseDate(p.Date)
	return Transaction{
		Amount:      decimal.RequireFromString(string(p.Amount)),
		Description: strings.TrimSpace(p.Description),
		Category:    models.Category(p.Category),
		Date:        date,
	}, nil
}

// PayloadOf returns the payload that represents a stored transaction.
func PayloadOf(t models.Transaction) Payload {
	return Payload{
		Amount:      Amount(t.Amount.String()),
		Description: t.Description,
		Category:    string(t.Category),
		Date:        FormatDate(t.Date),
	}
}

// ParseDate parses a calendar date in YYYY-MM-DD format or an RFC 3339 timestamp.
// The result is always in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	t, err := time.Parse(time.DateOnly, s)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrDateFormat
	}

	return t.In(time.UTC), nil
}

// FormatDate formats a date so that ParseDate returns the same instant.
func FormatDate(t time.Time) string {
	t = t.In(time.UTC)
	if t.Equal(t.Truncate(24 * time.Hour)) {
		return t.Format(time.DateOnly)
	}

	return t.Format(time.RFC3339Nano)
}
