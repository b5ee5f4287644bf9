package mysql

const createStateTableSQL = `
CREATE TABLE IF NOT EXISTS console_state (
  name       VARCHAR(64)  NOT NULL PRIMARY KEY,
  value      MEDIUMTEXT   NOT NULL,
  updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

const getStateSQL = `SELECT value FROM console_state WHERE name = ?`

const upsertStateSQL = `
INSERT INTO console_state (name, value)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  value      = VALUES(value),
  updated_at = CURRENT_TIMESTAMP
`

// delete statement is built per call: DELETE ... WHERE name IN (?,?,...)
const deleteStatePrefix = `DELETE FROM console_state WHERE name IN (`
