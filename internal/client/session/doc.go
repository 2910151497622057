// Package session owns the client's notion of "who is signed in".
//
// The bearer credential lives in the local database (TokenStore). Resolver
// decodes the credential's claims without verifying the signature; the
// backend remains the only authority. Any decode failure or an expired
// "exp" claim is treated as "no session" and the stored credential is
// removed.
//
// Callers take a Context snapshot once per command cycle with
// Resolver.Snapshot and refresh it only when authentication changes.
package session
