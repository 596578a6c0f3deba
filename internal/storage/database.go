package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var db *sql.DB

var ErrNotFound = errors.New("record not found")

// SQLite에는 시간을 고정 폭 UTC 문자열로 저장 (문자열 정렬 = 시간 정렬)
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"username" TEXT NOT NULL UNIQUE,
		"password_hash" TEXT NOT NULL,
		"created_at" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"name" TEXT NOT NULL,
		"role" TEXT NOT NULL,
		"subtitle" TEXT NOT NULL DEFAULT '',
		"summary" TEXT NOT NULL DEFAULT '',
		"email" TEXT NOT NULL DEFAULT '',
		"github" TEXT NOT NULL DEFAULT '',
		"linkedin" TEXT NOT NULL DEFAULT '',
		"avatar" TEXT,
		"created_at" TEXT NOT NULL,
		"updated_at" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stats (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"profile_id" INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		"value" TEXT NOT NULL,
		"label" TEXT NOT NULL,
		"sort_order" INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS education (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"profile_id" INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		"degree" TEXT NOT NULL,
		"institution" TEXT NOT NULL,
		"year" TEXT NOT NULL DEFAULT '',
		"gpa" TEXT NOT NULL DEFAULT '',
		"details" TEXT NOT NULL DEFAULT '',
		"sort_order" INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS skill_categories (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"profile_id" INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		"name" TEXT NOT NULL,
		"description" TEXT NOT NULL DEFAULT '',
		"photo" TEXT,
		"sort_order" INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"profile_id" INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		"title" TEXT NOT NULL,
		"description" TEXT NOT NULL DEFAULT '',
		"technologies" TEXT NOT NULL DEFAULT '',
		"github_url" TEXT NOT NULL DEFAULT '',
		"live_url" TEXT NOT NULL DEFAULT '',
		"image_url" TEXT NOT NULL DEFAULT '',
		"sort_order" INTEGER NOT NULL DEFAULT 0,
		"is_featured" INTEGER NOT NULL DEFAULT 0,
		"created_at" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"name" TEXT NOT NULL,
		"email" TEXT NOT NULL,
		"subject" TEXT NOT NULL DEFAULT '',
		"message" TEXT NOT NULL,
		"created_at" TEXT NOT NULL,
		"is_read" INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS chat_sessions (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"session_id" TEXT NOT NULL UNIQUE,
		"created_at" TEXT NOT NULL,
		"updated_at" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"session_id" INTEGER NOT NULL REFERENCES chat_sessions(id) ON DELETE CASCADE,
		"role" TEXT NOT NULL,
		"content" TEXT NOT NULL,
		"created_at" TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages(session_id, id)`,
}

// InitDB opens the SQLite database at path and creates missing tables.
func InitDB(path string) error {
	conn, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("InitDB(): failed to open database: %w", err)
	}
	if err = conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("InitDB(): failed to connect to database: %w", err)
	}
	// SQLite 쓰기는 단일 커넥션으로 직렬화
	conn.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			conn.Close()
			return fmt.Errorf("InitDB(): failed to create schema: %w", err)
		}
	}

	if db != nil {
		db.Close()
	}
	db = conn
	zap.L().Info("InitDB(): Init and create table successfully!", zap.String("path", path))
	return nil
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// Ping reports whether the database is reachable.
func Ping() error {
	if db == nil {
		return errors.New("database not initialized")
	}
	return db.Ping()
}

func now() string {
	return time.Now().UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
