package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSettingNotFound is returned when a setting has never been stored.
var ErrSettingNotFound = errors.New("setting not found")

// KeyDarkMode holds the process-wide theme mode flag.
const KeyDarkMode = "dark_mode"

// SettingsRepository handles key/value settings persistence.
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the stored value for key.
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

// Set upserts the value for key.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("setting key is required")
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO settings(key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *SettingsRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}

// DarkMode returns the stored theme mode, or fallback when none is stored.
func (r *SettingsRepository) DarkMode(ctx context.Context, fallback bool) (bool, error) {
	value, err := r.Get(ctx, KeyDarkMode)
	if errors.Is(err, ErrSettingNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	dark, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("parse %s=%q: %w", KeyDarkMode, value, err)
	}
	return dark, nil
}

// SetDarkMode stores the theme mode.
func (r *SettingsRepository) SetDarkMode(ctx context.Context, dark bool) error {
	return r.Set(ctx, KeyDarkMode, strconv.FormatBool(dark))
}
