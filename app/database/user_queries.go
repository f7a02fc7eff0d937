package database

import (
	"database/sql"

	"yano-school/app/models"
)

// GetUserByEmail returns the staff account with the given email.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users
			  WHERE email = $1 AND deleted_at IS NULL`

	u := &models.User{}
	err := db.QueryRow(query, email).Scan(&u.ID, &u.Email, &u.Password,
		&u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser inserts a staff account. The password must already be hashed.
func CreateUser(db *sql.DB, u *models.User) error {
	query := `INSERT INTO users (email, password, first_name, last_name, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, u.Email, u.Password, u.FirstName, u.LastName).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	result, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
