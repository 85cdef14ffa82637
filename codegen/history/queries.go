package history

const (
	postgresCreateTable = `
		CREATE TABLE IF NOT EXISTS query_history (
			id BIGSERIAL PRIMARY KEY,
			prompt TEXT NOT NULL,
			response TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	postgresCreate = `
		INSERT INTO query_history (prompt, response)
		VALUES ($1, $2)
		RETURNING id, prompt, response, created_at
	`

	// a NULL limit is LIMIT ALL
	postgresList = `
		SELECT id, prompt, response, created_at
		FROM query_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	postgresDelete = `
		DELETE FROM query_history
		WHERE id = $1
	`
)

const (
	// created_at is kept as RFC 3339 text with millisecond precision
	sqliteCreateTable = `
		CREATE TABLE IF NOT EXISTS query_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			prompt TEXT NOT NULL,
			response TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		)
	`

	sqliteCreate = `
		INSERT INTO query_history (prompt, response)
		VALUES (?, ?)
		RETURNING id, prompt, response, created_at
	`

	// a negative limit is no limit
	sqliteList = `
		SELECT id, prompt, response, created_at
		FROM query_history
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	sqliteDelete = `
		DELETE FROM query_history
		WHERE id = ?
	`
)
