package storage

import (
	"database/sql"
	"errors"

	"PortfolioSite/internal/models"
)

// GetOrCreateSession returns the session keyed by sessionID, creating it on
// first use.
func GetOrCreateSession(sessionID string) (models.ChatSession, error) {
	ts := now()
	if _, err := db.Exec(
		"INSERT INTO chat_sessions(session_id, created_at, updated_at) VALUES(?, ?, ?) ON CONFLICT(session_id) DO NOTHING",
		sessionID, ts, ts,
	); err != nil {
		return models.ChatSession{}, err
	}
	return GetSession(sessionID)
}

func GetSession(sessionID string) (models.ChatSession, error) {
	var s models.ChatSession
	var createdAt, updatedAt string
	row := db.QueryRow("SELECT id, session_id, created_at, updated_at FROM chat_sessions WHERE session_id = ?", sessionID)
	if err := row.Scan(&s.ID, &s.SessionID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, ErrNotFound
		}
		return s, err
	}
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return s, nil
}

// GetSessionWithMessages loads a session and its whole transcript, oldest
// message first.
func GetSessionWithMessages(sessionID string) (models.ChatSession, error) {
	s, err := GetSession(sessionID)
	if err != nil {
		return s, err
	}
	s.Messages, err = queryChatMessages(`
		SELECT id, role, content, created_at
		FROM chat_messages
		WHERE session_id = ?
		ORDER BY id ASC`, s.ID)
	return s, err
}

// RecentChatMessages returns the last limit messages of a session in
// chronological order.
func RecentChatMessages(sessionPK int64, limit int) ([]models.ChatMessage, error) {
	return queryChatMessages(`
		SELECT id, role, content, created_at FROM (
			SELECT id, role, content, created_at
			FROM chat_messages
			WHERE session_id = ?
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id ASC`, sessionPK, limit)
}

// AddChatExchange stores a user message and the assistant reply together
// and touches the session.
func AddChatExchange(sessionPK int64, userText, assistantText string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ts := now()
	stmt, err := tx.Prepare("INSERT INTO chat_messages(session_id, role, content, created_at) VALUES(?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(sessionPK, models.ChatRoleUser, userText, ts); err != nil {
		return err
	}
	if _, err := stmt.Exec(sessionPK, models.ChatRoleAssistant, assistantText, ts); err != nil {
		return err
	}
	if _, err := tx.Exec("UPDATE chat_sessions SET updated_at = ? WHERE id = ?", ts, sessionPK); err != nil {
		return err
	}
	return tx.Commit()
}

// ListSessions returns sessions most recently active first, without messages.
func ListSessions() ([]models.ChatSession, error) {
	rows, err := db.Query("SELECT id, session_id, created_at, updated_at FROM chat_sessions ORDER BY updated_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []models.ChatSession{}
	for rows.Next() {
		var s models.ChatSession
		var createdAt, updatedAt string
		if err := rows.Scan(&s.ID, &s.SessionID, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		s.CreatedAt = parseTime(createdAt)
		s.UpdatedAt = parseTime(updatedAt)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func queryChatMessages(query string, args ...any) ([]models.ChatMessage, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var m models.ChatMessage
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = parseTime(createdAt)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
