package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS food_entries (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	calories  INTEGER NOT NULL CHECK(calories >= 0),
	logged_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS grocery_items (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	quantity   TEXT NOT NULL DEFAULT '1',
	completed  INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1)),
	category   TEXT NOT NULL DEFAULT 'Other',
	sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS pantry_items (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	category          TEXT NOT NULL DEFAULT 'Other',
	expiration_date   TEXT NOT NULL,
	quantity          TEXT NOT NULL DEFAULT '1',
	days_until_expiry INTEGER NOT NULL,
	sort_order        INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS meal_plans (
	id             TEXT PRIMARY KEY,
	day            TEXT NOT NULL,
	breakfast      TEXT NOT NULL DEFAULT '',
	lunch          TEXT NOT NULL DEFAULT '',
	dinner         TEXT NOT NULL DEFAULT '',
	snack          TEXT NOT NULL DEFAULT '',
	total_calories INTEGER NOT NULL DEFAULT 0,
	sort_order     INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_food_entries_logged_at ON food_entries(logged_at);
CREATE INDEX IF NOT EXISTS idx_grocery_items_sort_order ON grocery_items(sort_order);
CREATE INDEX IF NOT EXISTS idx_pantry_items_sort_order ON pantry_items(sort_order);
CREATE INDEX IF NOT EXISTS idx_meal_plans_sort_order ON meal_plans(sort_order);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE TABLE IF NOT EXISTS seeded (
	id        INTEGER PRIMARY KEY CHECK(id = 1),
	seeded_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
