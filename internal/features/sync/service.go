package sync

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-legal/internal/config"
	"go-legal/internal/features/transition"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const writeTimeout = 5 * time.Second

// WarehouseMirror copies transition history rows into Postgres for
// reporting. With no DSN configured it does nothing.
type WarehouseMirror struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewWarehouseMirror opens the warehouse named by cfg.WarehouseDSN and
// creates the history table. A warehouse that cannot be reached is logged
// and the mirror stays disabled; it never blocks startup.
func NewWarehouseMirror(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) transition.HistoryMirror {
	m := &WarehouseMirror{logger: logger}
	if cfg.WarehouseDSN == "" {
		return m
	}

	db, err := sql.Open("postgres", cfg.WarehouseDSN)
	if err != nil {
		logger.Warn("Warehouse mirror disabled", zap.Error(err))
		return m
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				logger.Warn("Warehouse unreachable, mirror disabled", zap.Error(err))
				return nil
			}
			if _, err := db.ExecContext(ctx, createHistoryTable); err != nil {
				logger.Warn("Failed to create warehouse table, mirror disabled", zap.Error(err))
				return nil
			}
			m.db = db
			logger.Info("Warehouse mirror enabled", zap.String("table", historyTable))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})
	return m
}

// Enabled reports whether rows are being written.
func (m *WarehouseMirror) Enabled() bool {
	return m.db != nil
}

func (m *WarehouseMirror) MirrorTransition(ctx context.Context, h transition.TransitionHistory) error {
	if m.db == nil {
		return nil
	}
	row, err := toRow(h)
	if err != nil {
		return err
	}

	// The request context may already be finishing; the copy gets its own deadline.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()
	if _, err := m.db.ExecContext(ctx, insertHistory, row.args()...); err != nil {
		return fmt.Errorf("mirror transition %s: %w", row.ID, err)
	}
	return nil
}

func toRow(h transition.TransitionHistory) (historyRow, error) {
	var metadata []byte
	if len(h.Metadata) > 0 {
		var err error
		if metadata, err = json.Marshal(h.Metadata); err != nil {
			return historyRow{}, fmt.Errorf("encode metadata: %w", err)
		}
	}
	return historyRow{
		ID:         h.ID.Hex(),
		CaseID:     h.CaseID,
		FromPhase:  string(h.FromPhase),
		ToPhase:    string(h.ToPhase),
		FromStatus: string(h.FromStatus),
		ToStatus:   string(h.ToStatus),
		UserID:     h.UserID,
		UserRole:   string(h.UserRole),
		ApprovalID: h.ApprovalID,
		Reason:     h.Reason,
		Metadata:   metadata,
		OccurredAt: h.Timestamp.UTC(),
	}, nil
}
