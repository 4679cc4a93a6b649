package history

const createTableSQL = `
CREATE TABLE IF NOT EXISTS usage_snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	taken_at DATETIME DEFAULT (datetime('now')),
	label TEXT NOT NULL,
	travel REAL NOT NULL,
	ink REAL NOT NULL
);
`

const cleanupSQL = `DELETE FROM usage_snapshots WHERE taken_at < datetime('now', '-90 days');`

const insertSQL = `
INSERT INTO usage_snapshots (label, travel, ink)
VALUES (?, ?, ?);
`

// Latest snapshot per label, via the max rowid within each label group.
const summarySQL = `
SELECT
	s.label,
	s.travel,
	s.ink,
	(SELECT COUNT(*) FROM usage_snapshots WHERE label = s.label) as snapshots
FROM usage_snapshots s
WHERE s.id = (SELECT MAX(id) FROM usage_snapshots WHERE label = s.label)
ORDER BY s.label;
`

const recentSQL = `
SELECT label, travel, ink, taken_at
FROM usage_snapshots
ORDER BY id DESC
LIMIT ?;
`

// LabelSummary is the latest reading for one label plus its snapshot count.
type LabelSummary struct {
	Label     string
	Travel    float64
	Ink       float64
	Snapshots int
}

// Snapshot is a single stored usage reading.
type Snapshot struct {
	Label   string
	Travel  float64
	Ink     float64
	TakenAt string
}
