// Package admin implements staff authentication: password login against
// PostgreSQL-backed accounts, stateless signed session cookies carrying
// identity and role, and middleware enforcing authentication and role
// capabilities on staff routes.
//
// Sessions are self-contained signed tokens. There is no server-side session
// store and no revocation list: logout clears the cookie client-side, and a
// captured token remains verifiable until its 12-hour expiry.
package admin
