package postgres

import "strings"

// isNotNullConstraintViolation checks the error message for not-null
// constraint violation patterns so repositories can surface them as
// validation failures instead of opaque database errors.
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
