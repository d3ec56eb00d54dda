package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Card and category names: letters, numbers, spaces, and the punctuation
	// that shows up in real card titles: . ' - / & ( ) , ! :
	cardNameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),:!-]+$`)

	// Set codes like "OP01", "BASE", "swsh12pt5"
	setCodeRegex = regexp.MustCompile(`^[A-Za-z0-9-]{1,24}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("card_name", CardName)
	_ = v.RegisterValidation("set_code", SetCode)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// CardName validates that a string contains only valid card name characters
func CardName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return cardNameRegex.MatchString(val)
}

// SetCode validates a set code identifier
func SetCode(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return setCodeRegex.MatchString(val)
}

// NoEmoji rejects strings containing emoji or other symbol-plane runes
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > unicode.MaxLatin1 && (unicode.Is(unicode.So, r) || unicode.Is(unicode.Sk, r)) {
			return false
		}
	}
	return true
}
