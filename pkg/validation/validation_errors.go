package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Name":        "Name",
	"Rarity":      "Rarity",
	"SetCode":     "Set Code",
	"Number":      "Card Number",
	"Description": "Description",
	"ImageURL":    "Image URL",
	"IconURL":     "Icon URL",
	"CategoryID":  "Category",
	"CardID":      "Card",
	"Username":    "Username",
	"AvatarURL":   "Avatar URL",
	"TriggerType": "Trigger Type",
	"Requirement": "Requirement",
}

// messageFor renders one field error as a user-facing sentence.
func messageFor(fe validator.FieldError) string {
	label, ok := FieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "card_name":
		return fmt.Sprintf("%s contains invalid characters", label)
	case "set_code":
		return fmt.Sprintf("%s must be an alphanumeric set code", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// FormatErrors flattens a validator error into one readable message.
func FormatErrors(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(fe))
	}
	return strings.Join(msgs, "; ")
}
