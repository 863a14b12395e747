package sync

import "time"

const historyTable = "case_transition_history"

const createHistoryTable = `CREATE TABLE IF NOT EXISTS ` + historyTable + ` (
	id          TEXT PRIMARY KEY,
	case_id     TEXT NOT NULL,
	from_phase  TEXT NOT NULL,
	to_phase    TEXT NOT NULL,
	from_status TEXT,
	to_status   TEXT,
	user_id     TEXT NOT NULL,
	user_role   TEXT NOT NULL,
	approval_id TEXT,
	reason      TEXT,
	metadata    JSONB,
	occurred_at TIMESTAMPTZ NOT NULL
)`

const insertHistory = `INSERT INTO ` + historyTable + `
	(id, case_id, from_phase, to_phase, from_status, to_status, user_id, user_role, approval_id, reason, metadata, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO NOTHING`

// historyRow is one transition as stored in the warehouse.
type historyRow struct {
	ID         string
	CaseID     string
	FromPhase  string
	ToPhase    string
	FromStatus string
	ToStatus   string
	UserID     string
	UserRole   string
	ApprovalID string
	Reason     string
	Metadata   []byte
	OccurredAt time.Time
}

func (r historyRow) args() []interface{} {
	return []interface{}{
		r.ID, r.CaseID, r.FromPhase, r.ToPhase, r.FromStatus, r.ToStatus,
		r.UserID, r.UserRole, r.ApprovalID, r.Reason, r.Metadata, r.OccurredAt,
	}
}
