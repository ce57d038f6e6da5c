// Package api provides HTTP client functionality for communicating with the
// BotBuilder API. It handles authentication, request/response serialization
// and the mapping of failures onto the types in internal/apierrors.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// Every request carries the headers
//
//	Authorization: Bearer <api key>
//	Content-Type: application/json
//	User-Agent: <client identifier>
//
// Multipart uploads replace only the content type.
//
// # Failure Handling
//
// Requests are sent exactly once. A non-2xx response becomes an
// [apierrors.APIError] carrying the status code and raw body; a failure
// before any response (DNS, refused connection, timeout) becomes an
// [apierrors.NetworkError]. Neither is retried.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
