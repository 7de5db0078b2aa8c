package constants

import "time"

const (
	// Context keys set by the auth middleware.
	ContextKeyUserID         = "user_id"
	ContextKeyOrganisationID = "organisation_id"

	// TokenTTL is the validity window of an issued session token. Expiry
	// requires a fresh login; there is no refresh mechanism.
	TokenTTL = 8 * time.Hour

	// TokenIssuer is embedded in every issued token.
	TokenIssuer = "hr-management-api"

	// AuditLogLimit caps how many entries the log listing returns.
	AuditLogLimit = 100

	// BcryptCost is the work factor used when hashing passwords.
	BcryptCost = 10
)
