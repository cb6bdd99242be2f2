package store

const (
	createUserWithCode = `INSERT INTO users (name, date_of_birth, email, otp_code, otp_expires_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, name, date_of_birth, email, otp_code, otp_expires_at, created_at;`

	findUserByEmail = `SELECT user_id, name, date_of_birth, email, otp_code, otp_expires_at, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, date_of_birth, email, otp_code, otp_expires_at, created_at
    FROM users
    WHERE user_id = $1;`

	setCode = `UPDATE users
    SET otp_code = $2, otp_expires_at = $3
    WHERE email = $1
    RETURNING user_id;`

	// consumeCode is the single conditional update that makes passcode
	// verification atomic: the code is cleared only where email, code, and
	// expiry all match, so two concurrent attempts can never both succeed.
	consumeCode = `UPDATE users
    SET otp_code = NULL, otp_expires_at = NULL
    WHERE email = $1 AND otp_code = $2 AND otp_expires_at >= $3
    RETURNING user_id, name, date_of_birth, email, created_at;`

	clearExpiredCodes = `UPDATE users
    SET otp_code = NULL, otp_expires_at = NULL
    WHERE otp_expires_at IS NOT NULL AND otp_expires_at < $1;`
)
