package database

// AllSettings returns the flat key-value settings as a map.
func (db *DB) AllSettings() (map[string]string, error) {
	rows, err := db.Query(`SELECT key_name, COALESCE(value_data, '') FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}

	return settings, rows.Err()
}

// SaveSetting upserts one key: existing keys are overwritten, new keys
// inserted.
func (db *DB) SaveSetting(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key_name, value_data) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE value_data = ?`,
		key, value, value)
	return err
}
