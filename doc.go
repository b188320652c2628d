// Package userauth implements credential registration, login verification,
// and bearer-token issuance for end users.
//
// The package is organized around a small set of collaborators:
//   - Payload schemas (validate.go) gate and normalize untrusted input
//     before any handler runs.
//   - Argon2Hasher (argon2.go) produces and verifies memory-hard password
//     digests with fixed, deployment-wide cost parameters.
//   - TokenService (token_service.go) signs and verifies HS256 JWTs with
//     distinct audiences for access and refresh use, so a captured refresh
//     token can never be replayed as an access credential.
//   - Users (repo_users.go) is the narrow credential-store contract: insert
//     with uniqueness on email, and lookup by normalized email.
//   - Auther (authenticator.go) orchestrates the sign-up, login, and
//     refresh flows and translates storage conflicts and token-verification
//     failures into the stable error taxonomy in errors.go.
//
// HTTP transport lives in http_controller.go (fiber) and the service binary
// under cmd/userauthd.
package userauth
