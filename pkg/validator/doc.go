// Package validator provides composable field validation rules for the
// authentication flows: required fields, email format, and password policy.
//
//	if err := validator.Apply(
//	    validator.ValidEmail("email", req.Email),
//	    validator.StrongPassword("password", req.Password, validator.DefaultPasswordStrength()),
//	); err != nil {
//	    // err is a ValidationErrors with per-field messages
//	}
package validator
