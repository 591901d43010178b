package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id          INTEGER PRIMARY KEY AUTOINCREMENT,
    taken_at             TEXT NOT NULL,
    base_budget          TEXT NOT NULL,
    current_budget       TEXT NOT NULL,
    spent                TEXT NOT NULL,
    remaining            TEXT NOT NULL,
    unlocked             TEXT NOT NULL,
    disabled_count       INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_leaks (
    snapshot_id          INTEGER NOT NULL REFERENCES snapshots(snapshot_id) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    leak_id              TEXT NOT NULL,
    name                 TEXT NOT NULL,
    category             TEXT NOT NULL,
    daily_cost           TEXT NOT NULL,
    enabled              INTEGER NOT NULL,
    PRIMARY KEY (snapshot_id, leak_id)
);

CREATE TABLE IF NOT EXISTS snapshot_history (
    snapshot_id          INTEGER NOT NULL REFERENCES snapshots(snapshot_id) ON DELETE CASCADE,
    day                  TEXT NOT NULL,
    spent                TEXT NOT NULL,
    velocity             INTEGER NOT NULL,
    PRIMARY KEY (snapshot_id, day)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_taken ON snapshots(taken_at);
`
