package sqlite

// migration is a single schema change. Migrations run in version order and
// are tracked in the schema_version table; each sql block must insert its
// own version row.
type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version     INTEGER PRIMARY KEY,
	applied_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS users (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	username       TEXT NOT NULL UNIQUE,
	email          TEXT NOT NULL UNIQUE,
	password_hash  TEXT NOT NULL,
	role           TEXT NOT NULL CHECK(role IN ('admin', 'Educador', 'Estudiante')) DEFAULT 'Educador',
	approved       INTEGER NOT NULL DEFAULT 0,
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS notifications (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	detail     TEXT NOT NULL,
	read       INTEGER NOT NULL DEFAULT 0,
	type       TEXT NOT NULL DEFAULT 'general',
	message    TEXT NOT NULL DEFAULT 'Mensaje por defecto',
	timestamp  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS students (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	progress   INTEGER NOT NULL DEFAULT 0,
	photo_url  TEXT
);

CREATE TABLE IF NOT EXISTS classes (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL UNIQUE,
	grade        TEXT NOT NULL,
	educator_id  INTEGER,
	FOREIGN KEY (educator_id) REFERENCES users(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS class_assignments (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	class_id     INTEGER NOT NULL,
	student_id   INTEGER NOT NULL,
	assigned_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (class_id) REFERENCES classes(id) ON DELETE CASCADE,
	FOREIGN KEY (student_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS tasks (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'Pendiente',
	date         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS grados (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre  TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS profiles (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	role         TEXT NOT NULL UNIQUE,
	description  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS recommendations (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	student_id      INTEGER NOT NULL,
	recommendation  TEXT NOT NULL,
	created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
