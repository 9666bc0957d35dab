package queries

// Create Queries
const (
	CreateRequestQuery = `
			INSERT INTO loyalty.request_data (
				request_id, request_type, user_id,
				amount, status, created_at
			) VALUES (?, ?, ?, ?, ?, ?)`
)

// Write Queries
const (
	// Update Request Status on Admin Review
	UpdateRequestStatusQuery = `
			UPDATE loyalty.request_data
			SET status = ?
			WHERE request_id = ?`
)

// Read Queries
const (
	GetRequestByIDQuery = `
			SELECT request_id, request_type, user_id,
				amount, status, created_at
			FROM loyalty.request_data
			WHERE request_id = ?`

	// Get Pending Requests by Type for the Admin Dashboard
	GetPendingRequestsByTypeQuery = `
			SELECT request_id, request_type, user_id,
				amount, status, created_at
			FROM loyalty.request_data
			WHERE status = ? AND request_type = ? ALLOW FILTERING`

	// Count Pending Requests by Type for the Backlog Gauge
	CountPendingRequestsByTypeQuery = `
			SELECT COUNT(*)
			FROM loyalty.request_data
			WHERE status = ? AND request_type = ? ALLOW FILTERING`
)
