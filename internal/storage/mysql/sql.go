package mysql

const insertMissSQL = `
INSERT INTO warm_misses (resource, id, http_status, reason)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  http_status = VALUES(http_status),
  reason      = VALUES(reason),
  hits        = hits + 1,
  seen_at     = CURRENT_TIMESTAMP
`

const insertRunSQL = `
INSERT INTO warm_runs (started_at, finished_at, lists, details, misses, failures)
VALUES (?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listMissesSQL = `
SELECT resource, id, http_status, COALESCE(reason, ''), hits, seen_at
FROM warm_misses
WHERE (? = '' OR resource = ?)
ORDER BY seen_at DESC, resource, id
LIMIT ?
`

const lastRunSQL = `
SELECT started_at, finished_at, lists, details, misses, failures
FROM warm_runs
ORDER BY id DESC
LIMIT 1
`
