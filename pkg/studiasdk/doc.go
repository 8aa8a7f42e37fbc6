/*
Package studiasdk is the client SDK for the StudIA university tutoring
portal. It wraps the mobile backend API behind a single authenticated
Client, a persistent credential store contract and a session state machine.

# Client

Create a Client with a credential store and call typed endpoint methods:

	store, _ := credstore.NewFileStore(path)
	client := studiasdk.New("https://studia.example.com/api/mobile", store)

	data, err := client.Login(ctx, email, password)
	subjects, err := client.Subjects(ctx, 1)
	sessions, err := client.TutoringSessions(ctx, subjectID, 1)
	enrollment, err := client.Enroll(ctx, sessionID)

Every request carries JSON content headers, a ULID X-Request-ID, the bearer
access token when one is stored, and the X-Tenant-Schema header resolved by
the tenant resolver (stored value or a fixed default).

# Token refresh

When a request comes back 401, the client reads the stored refresh token,
exchanges it at the refresh endpoint and replays the original request
exactly once with the new access token. The replay's outcome is final: a
second 401 propagates without another refresh. If no refresh token is
stored, or the refresh call itself fails, the client clears the access
token, refresh token and cached user so no partial credential pair
survives, and the original authentication error propagates.

Concurrent requests failing with 401 refresh independently; the per-request
retry tag bounds each to a single attempt.

# Errors

Domain endpoints only ever return *APIError. Its Error() string is a short
localized message resolved from the backend payload in fixed priority
(structured field errors, then message, error and detail fields, then a raw
string body) with a per-operation fallback. Raw transport errors never
cross the endpoint boundary. The Result envelope converts (value, error)
pairs into the {success, data | error} shape consumed by UI layers.

# Session manager

SessionManager owns the process-wide authentication state (initializing,
authenticated, unauthenticated). Start restores a session from storage,
failing closed. Login and Logout drive the transitions; Logout always ends
in unauthenticated, even when storage cleanup fails. Observers subscribe to
snapshot notifications instead of polling.
*/
package studiasdk
