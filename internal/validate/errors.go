package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/finance-visualizer/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrDateFormat = errors.New("invalid date format")

// Error is returned when a payload does not pass validation.
//
// Fields maps the JSON name of every failing field to a message
// that can be shown to the user.
type Error struct {
	Fields map[string]string `json:"fields"`
}

func (e *Error) Error() string {
	names := maps.Keys(e.Fields)
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}

	return "the transaction is invalid: " + strings.Join(parts, ", ")
}

// Has reports whether the field failed validation.
func (e *Error) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

var messages = map[string]map[string]string{
	"amount": {
		"required":  "Amount is required",
		"decimal":   "Amount must be a number",
		"intdigits": "Amount is too large",
		"minabs":    "Amount must be at least 0.01",
		"maxscale":  "Amount must not have more than 2 decimal places",
	},
	"description": {
		"notblank": "Description is required",
	},
	"category": {
		"required": "Category is required",
		"category": "Category must be one of " + strings.Join(models.CategoryLabels(), ", "),
	},
	"date": {
		"required": "Date is required",
		"date":     "Invalid date format",
	},
}

// typeMessage is the message for a text field sent as another JSON type.
func typeMessage(field string) string {
	return fmt.Sprintf("%s%s must be a string", strings.ToUpper(field[:1]), field[1:])
}

func message(fe validator.FieldError) string {
	if m, ok := messages[fe.Field()][fe.Tag()]; ok {
		return m
	}

	return fmt.Sprintf("%s is invalid", fe.Field())
}
