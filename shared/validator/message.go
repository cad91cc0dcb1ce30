package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// messages holds the detail template per rule; {field} is the JSON name, {param} the rule argument.
var messages = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} must not be blank",
	"max":      "{field} must be at most {param} characters",
	"maxbytes": "{field} must be at most {param} bytes",
}

// message renders the first failed rule with a known template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		tmpl, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(tmpl)
	}

	return valErrors.Error()
}
