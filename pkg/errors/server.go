package errors

const (
	ErrInvalidRequestBody = "Invalid request body"
	ErrDBOperationFailed  = "Database operation failed"
	ErrDBRecordNotFound   = "Database record not found"
	ErrUnauthorized       = "Missing or invalid token"
	ErrForbidden          = "Forbidden"
	ErrLedgerCallFailed   = "Ledger operation failed"
)
