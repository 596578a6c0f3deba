package storage

import (
	"database/sql"
	"errors"

	"PortfolioSite/internal/models"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var ErrUsernameExists = errors.New("username already exists")

func CreateUser(username, passwordHash string) (models.User, error) {
	createdAt := now()
	res, err := db.Exec("INSERT INTO users(username, password_hash, created_at) VALUES(?, ?, ?)", username, passwordHash, createdAt)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return models.User{}, ErrUsernameExists
		}
		return models.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    parseTime(createdAt),
	}, nil
}

func GetUserByUsername(username string) (models.User, error) {
	var user models.User
	var createdAt string

	row := db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}
	user.CreatedAt = parseTime(createdAt)
	return user, nil
}
