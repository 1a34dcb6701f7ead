package sqlite

const schema = `
-- Completed pipeline runs
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    source_file TEXT NOT NULL,
    total_pairs INTEGER NOT NULL DEFAULT 0,
    resolved INTEGER NOT NULL DEFAULT 0,
    skipped INTEGER NOT NULL DEFAULT 0,
    discarded INTEGER NOT NULL DEFAULT 0,
    jee_advanced INTEGER NOT NULL DEFAULT 0,
    jee_mains INTEGER NOT NULL DEFAULT 0,
    ncert INTEGER NOT NULL DEFAULT 0,
    plain_other INTEGER NOT NULL DEFAULT 0,
    started_at DATETIME NOT NULL,
    finished_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_finished_at ON runs(finished_at);
`
