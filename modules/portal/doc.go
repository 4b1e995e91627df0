// Package portal implements customer-facing account flows: registration,
// password login, password recovery over email, and the public contact and
// subcontractor application forms.
//
// Customer sessions are long-lived signed tokens carrying only the customer
// id. The profile is refetched from storage on every authenticated request,
// so edits and deactivation take effect immediately rather than at token
// expiry. Registration, password recovery, and the public forms sit behind
// per-client rate limits.
package portal
