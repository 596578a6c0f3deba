package storage

import (
	"PortfolioSite/internal/models"
)

func CreateMessage(m models.Message) (models.Message, error) {
	createdAt := now()
	res, err := db.Exec(
		"INSERT INTO messages(name, email, subject, message, created_at, is_read) VALUES(?, ?, ?, ?, ?, 0)",
		m.Name, m.Email, m.Subject, m.Message, createdAt,
	)
	if err != nil {
		return models.Message{}, err
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return models.Message{}, err
	}
	m.CreatedAt = parseTime(createdAt)
	m.IsRead = false
	return m, nil
}

// ListMessages returns messages newest first. A nil isRead lists all.
func ListMessages(isRead *bool) ([]models.Message, error) {
	query := `
		SELECT id, name, email, subject, message, created_at, is_read
		FROM messages`
	var args []any
	if isRead != nil {
		query += " WHERE is_read = ?"
		args = append(args, boolToInt(*isRead))
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &createdAt, &m.IsRead); err != nil {
			return nil, err
		}
		m.CreatedAt = parseTime(createdAt)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func SetMessageRead(id int64, read bool) error {
	res, err := db.Exec("UPDATE messages SET is_read = ? WHERE id = ?", boolToInt(read), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
