package database

// Schema statements per driver. The only divergence is the
// auto-incrementing primary key and timestamp types; column names and
// semantics are identical so the repository queries stay portable.

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS filter_history (
		id BIGSERIAL PRIMARY KEY,
		video_id TEXT NOT NULL,
		compliance TEXT NOT NULL,
		flag_count INTEGER NOT NULL,
		is_sponsor_content BOOLEAN NOT NULL,
		promotional_score DOUBLE PRECISION NOT NULL,
		summary TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_filter_history_video_id
		ON filter_history (video_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS assessment_history (
		id BIGSERIAL PRIMARY KEY,
		video_id TEXT NOT NULL,
		quality_rating TEXT NOT NULL,
		overall_score DOUBLE PRECISION NOT NULL,
		policy_rating TEXT NOT NULL,
		recommendation_count INTEGER NOT NULL,
		result TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessment_history_video_id
		ON assessment_history (video_id, created_at DESC)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS filter_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id TEXT NOT NULL,
		compliance TEXT NOT NULL,
		flag_count INTEGER NOT NULL,
		is_sponsor_content BOOLEAN NOT NULL,
		promotional_score REAL NOT NULL,
		summary TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_filter_history_video_id
		ON filter_history (video_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS assessment_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id TEXT NOT NULL,
		quality_rating TEXT NOT NULL,
		overall_score REAL NOT NULL,
		policy_rating TEXT NOT NULL,
		recommendation_count INTEGER NOT NULL,
		result TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessment_history_video_id
		ON assessment_history (video_id, created_at DESC)`,
}

func schemaFor(driver string) []string {
	if driver == "sqlite3" {
		return sqliteSchema
	}
	return postgresSchema
}
