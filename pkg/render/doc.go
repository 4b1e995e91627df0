// Package render writes JSON HTTP responses in a consistent envelope.
//
// Successful responses carry the payload under "data"; failures carry an
// "error" object with a stable machine-readable code, an optional message,
// and optional per-field validation details:
//
//	render.JSON(w, http.StatusOK, user)
//	render.Error(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
//	render.ValidationError(w, errs.Fields())
package render
