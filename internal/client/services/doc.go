// Package services holds the client's application services. They sit
// between the REPL and the backend gateway: AuthService manages the stored
// credential around the /auth endpoints, and CourseService runs catalogue
// reads and the multi-request admin mutations.
package services
