// Package cookie centralizes cookie attribute handling so every session
// cookie carries the same security posture: HttpOnly, SameSite=Lax, Path=/
// by default, Secure in anything but explicit local development.
//
//	manager := cookie.New(cookie.WithSecure(true))
//	manager.Set(w, "admin_session", tokenValue, cookie.WithMaxAge(43200))
//	value, err := manager.Get(r, "admin_session")
//	manager.Delete(w, "admin_session")
package cookie
