// Package client contains the client-side building blocks that talk to the
// academy backend and bootstrap local persistence.
//
// # Overview
//
// The package provides:
//  1. A transport contract (the AuthAPI, CourseAPI and Client interfaces)
//     covering login, signup, password reset and course CRUD with picture
//     uploads.
//  2. HTTPClient, the REST implementation. Every request goes through
//     HTTPClient.Do, which injects the bearer credential, picks the content
//     type (JSON unless the body is multipart) and maps HTTP statuses to
//     typed outcomes.
//  3. InitDatabase, which opens the local SQLite database and applies the
//     embedded goose migrations.
//
// # Error Handling
//
// 401 responses surface as ErrUnauthorized after the configured
// unauthorized handler has run. Other non-2xx responses surface as
// *RequestFailedError carrying the backend's message. Transport failures
// wrap ErrUnavailable. Match them with errors.Is / errors.As.
//
// There is no retry policy: every failure is reported once.
package client
