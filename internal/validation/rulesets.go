package validation

import (
	"admission/internal/domain/entity"
	domainerrors "admission/internal/domain/errors"
)

// Submission field names shared with clients.
const (
	FieldName            = "name"
	FieldUsername        = "userName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldRole            = "role"
	FieldConfirmPassword = "confirmPassword"
)

// Bounds applied by the registration and login rule sets.
const (
	NameMinLength     = 2
	NameMaxLength     = 50
	UsernameMinLength = 3
	UsernameMaxLength = 30
	EmailMaxLength    = 255
	PasswordMinLength = 8
	PasswordMaxLength = 128
)

// Rule violation messages.
const (
	MsgNameLength        = "Name must be between 2 and 50 characters"
	MsgUsernameLength    = "Username must be between 3 and 30 characters"
	MsgUsernameCharset   = "Username can only contain letters, numbers, underscores and hyphens"
	MsgEmailInvalid      = "Please enter a valid email address"
	MsgEmailLength       = "Email must be at most 255 characters"
	MsgPasswordRequired  = "Password is required"
	MsgPasswordStrength  = "Password must be 8 to 128 characters and include an uppercase letter, a lowercase letter and a number"
	MsgRoleInvalid       = "Role must be either applicant or employer"
	MsgConfirmRequired   = "Please confirm your password"
	MsgPasswordsMismatch = "Passwords do not match"
)

const usernamePattern = `[A-Za-z0-9_-]+`

var defaultRole = entity.DefaultRole.String()

var (
	nameRule = FieldRule{
		Name:       FieldName,
		Label:      "Name",
		Transforms: []Transform{Trim},
		Constraints: []Constraint{
			Required("Name is required"),
			Length(NameMinLength, NameMaxLength, MsgNameLength),
		},
	}

	usernameRule = FieldRule{
		Name:       FieldUsername,
		Label:      "Username",
		Transforms: []Transform{Trim},
		Constraints: []Constraint{
			Required("Username is required"),
			Length(UsernameMinLength, UsernameMaxLength, MsgUsernameLength),
			Pattern(usernamePattern, MsgUsernameCharset),
		},
	}

	emailRule = FieldRule{
		Name:       FieldEmail,
		Label:      "Email",
		Transforms: []Transform{Trim, Lower},
		Constraints: []Constraint{
			Required("Email is required"),
			Email(MsgEmailInvalid),
			MaxLength(EmailMaxLength, MsgEmailLength),
		},
	}

	newPasswordRule = FieldRule{
		Name:       FieldPassword,
		Label:      "Password",
		Transforms: []Transform{Trim},
		Constraints: []Constraint{
			Required(MsgPasswordRequired),
			PasswordComplexity(PasswordMinLength, PasswordMaxLength, MsgPasswordStrength),
		},
	}

	roleRule = FieldRule{
		Name:       FieldRole,
		Label:      "Role",
		Transforms: []Transform{Trim, Lower},
		Constraints: []Constraint{
			OneOf(entity.AllRoles.ToStrings(), MsgRoleInvalid),
		},
		Default: &defaultRole,
	}

	confirmPasswordRule = FieldRule{
		Name:       FieldConfirmPassword,
		Label:      "Password confirmation",
		Transforms: []Transform{Trim},
		Constraints: []Constraint{
			Required(MsgConfirmRequired),
		},
	}

	loginPasswordRule = FieldRule{
		Name:       FieldPassword,
		Label:      "Password",
		Transforms: []Transform{Trim},
		Constraints: []Constraint{
			Required(MsgPasswordRequired),
		},
	}
)

// RegistrationRules validates a sign-up submission.
var RegistrationRules = RuleSet{
	Fields: []FieldRule{nameRule, usernameRule, emailRule, newPasswordRule, roleRule},
}

// ConfirmedRegistrationRules is RegistrationRules plus a confirmation field
// that must equal the password.
var ConfirmedRegistrationRules = RegistrationRules.Extend(
	[]FieldRule{confirmPasswordRule},
	[]CrossFieldRule{{
		Fields:  []string{FieldPassword, FieldConfirmPassword},
		Path:    FieldConfirmPassword,
		Check:   Equal(FieldPassword, FieldConfirmPassword),
		Message: MsgPasswordsMismatch,
	}},
)

// LoginRules validates a login submission.
var LoginRules = RuleSet{
	Fields: []FieldRule{emailRule, loginPasswordRule},
}

// ParseRegistration validates sub against RegistrationRules.
func ParseRegistration(sub Submission) (entity.Registration, error) {
	return parseRegistration(RegistrationRules, sub)
}

// ParseConfirmedRegistration validates sub against ConfirmedRegistrationRules.
func ParseConfirmedRegistration(sub Submission) (entity.Registration, error) {
	return parseRegistration(ConfirmedRegistrationRules, sub)
}

// ParseLogin validates sub against LoginRules.
func ParseLogin(sub Submission) (entity.Credentials, error) {
	values, ferr := LoginRules.Validate(sub)
	if ferr != nil {
		return entity.Credentials{}, domainerrors.NewValidationError(ferr.Field, ferr.Message)
	}

	return entity.Credentials{
		Email:    values[FieldEmail],
		Password: values[FieldPassword],
	}, nil
}

func parseRegistration(rules RuleSet, sub Submission) (entity.Registration, error) {
	values, ferr := rules.Validate(sub)
	if ferr != nil {
		return entity.Registration{}, domainerrors.NewValidationError(ferr.Field, ferr.Message)
	}

	return entity.Registration{
		Name:     values[FieldName],
		Username: values[FieldUsername],
		Email:    values[FieldEmail],
		Password: values[FieldPassword],
		Role:     entity.Role(values[FieldRole]),
	}, nil
}
