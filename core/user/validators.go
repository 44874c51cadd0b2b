package user

import (
	"errors"
	"strings"
	"unicode"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/eduflowhq/eduflow/core"
)

var (
	// custom validation tags & texts
	roleTag  = "lmsrole"
	roleText = "invalid role"

	pwdMinLen = 8
	pwdMaxSim = 0.7

	pwdTooShortText    = "password must contain at least 8 characters"
	pwdAllNumText      = "password cannot be entirely numeric"
	pwdTooSimText      = "password is too similar to your personal info"
	errInvalidPassword = errors.New("invalid password")
)

// RegisterValidators registers user-specific validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(validate, translator, roleTag, roleText)
}

func roleValidation(fl validator.FieldLevel) bool {
	return IsValidRole(fl.Field().String())
}

// Credentials is a login request payload.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,lmsrole"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	// emails are matched case-sensitively as stored; only trim, never lower
	c.Email = core.CleanString(c.Email)
	return validate.Struct(c)
}

// Registration is a sign-up request payload.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,lmsrole"`
}

func (r *Registration) Validate(validate *validator.Validate) error {
	r.Name = core.CleanString(r.Name)
	r.Email = core.CleanString(r.Email)

	if err := validate.Struct(r); err != nil {
		return err
	}
	return ValidatePassword(r.Password, r.Name, r.Email)
}

// ValidatePassword applies form-level password quality rules:
// minimum length, not entirely numeric, no similarity to the given user attributes.
func ValidatePassword(pwd string, usrAttrs ...string) error {
	reportErr := func(text string) error {
		return core.NewValidationError(errInvalidPassword, core.FieldError{Field: "password", Error: text})
	}

	if len(pwd) < pwdMinLen {
		return reportErr(pwdTooShortText)
	}

	var digitCount int
	for _, char := range pwd {
		if unicode.IsDigit(char) {
			digitCount++
		}
	}
	if digitCount == len(pwd) {
		return reportErr(pwdAllNumText)
	}

	getRatio := func(pass, usrAttr string) float64 {
		if usrAttr == "" {
			return 0
		}
		return difflib.NewMatcher(strings.Split(pass, ""), strings.Split(usrAttr, "")).QuickRatio()
	}
	lpwd := strings.ToLower(pwd)
	for _, attr := range usrAttrs {
		if getRatio(lpwd, strings.ToLower(attr)) >= pwdMaxSim {
			return reportErr(pwdTooSimText)
		}
	}
	return nil
}
