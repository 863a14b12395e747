package logger

import (
	"context"
	"sync"
	"testing"

	common_models "go-legal/internal/common/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type memoryInserter struct {
	mu   sync.Mutex
	docs []common_models.Log
}

func (m *memoryInserter) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, document.(common_models.Log))
	return &mongo.InsertOneResult{}, nil
}

func TestDBCoreTeesEntries(t *testing.T) {
	inserter := &memoryInserter{}
	writer := NewDBLogWriter(inserter)
	observed, logs := observer.New(zapcore.InfoLevel)

	log := zap.New(NewDBCore(observed, writer)).With(zap.String("app", "test"))
	log.Warn("side effect failed", zap.String("case_id", "c1"), zap.String("ip", "10.0.0.1"))
	log.Debug("below level")

	writer.Close()

	assert.Equal(t, 1, logs.Len())
	require.Len(t, inserter.docs, 1)
	assert.Equal(t, "side effect failed", inserter.docs[0].Message)
	assert.Equal(t, "c1", inserter.docs[0].CaseID)
	assert.Equal(t, "10.0.0.1", inserter.docs[0].IpAddress)
	assert.Equal(t, 30, inserter.docs[0].LogLevelId)
}

func TestMapLevelToInt(t *testing.T) {
	assert.Equal(t, 10, mapLevelToInt(zapcore.DebugLevel))
	assert.Equal(t, 40, mapLevelToInt(zapcore.ErrorLevel))
	assert.Equal(t, 20, mapLevelToInt(zapcore.DPanicLevel))
}

func TestLoggingAfterCloseIsDropped(t *testing.T) {
	inserter := &memoryInserter{}
	writer := NewDBLogWriter(inserter)
	observed, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(NewDBCore(observed, writer))

	log.Info("before close")
	writer.Close()

	// fx logs its own OnStop events through the same logger after the hook ran
	fxLog := &fxevent.ZapLogger{Logger: log}
	require.NotPanics(t, func() {
		fxLog.LogEvent(&fxevent.OnStopExecuted{FunctionName: "logger.NewLogger.func1", CallerName: "main"})
		log.Warn("after close")
		writer.Close()
	})

	assert.Equal(t, 3, logs.Len())
	require.Len(t, inserter.docs, 1)
	assert.Equal(t, "before close", inserter.docs[0].Message)
}
