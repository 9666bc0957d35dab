package queries

// Create Queries
const (
	CreateUserQuery = `
			INSERT INTO loyalty.user_data (
				user_id, email, password_hash,
				wallet_address, role, created_at
			) VALUES (?, ?, ?, ?, ?, ?)`
)

// Read Queries
const (
	GetUserByIDQuery = `
			SELECT user_id, email, password_hash,
				wallet_address, role, created_at
			FROM loyalty.user_data
			WHERE user_id = ?`

	GetUserByEmailQuery = `
			SELECT user_id, email, password_hash,
				wallet_address, role, created_at
			FROM loyalty.user_data
			WHERE email = ? ALLOW FILTERING`

	GetUserIDByEmailQuery = `
			SELECT user_id
			FROM loyalty.user_data
			WHERE email = ? ALLOW FILTERING`
)
