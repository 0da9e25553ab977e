package server

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// levelHolder keeps the minimum level requested via logging/setLevel.
// Nothing is sent to the client before a level is set.
type levelHolder struct {
	mux   sync.RWMutex
	level *schema.LoggingLevel
}

func (l *levelHolder) set(level schema.LoggingLevel) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.level = &level
}

func (l *levelHolder) get() *schema.LoggingLevel {
	l.mux.RLock()
	defer l.mux.RUnlock()
	return l.level
}

// Logger sends notifications/message to the connected client
type Logger struct {
	name     string
	level    *levelHolder
	notifier transport.Notifier
}

// Logger creates a new logger with a name
func (l *Logger) Logger(name string) *Logger {
	return &Logger{
		name:     name,
		level:    l.level,
		notifier: l.notifier,
	}
}

func (l *Logger) log(ctx context.Context, level schema.LoggingLevel, data any) error {
	minLevel := l.level.get()
	if minLevel == nil || minLevel.Ordinal() > level.Ordinal() {
		//skip logging since level is too verbose
		return nil
	}
	if l.notifier == nil {
		return nil
	}
	request := &jsonrpc.Notification{Method: schema.MethodNotificationMessage}
	params := schema.LoggingMessageNotificationParams{
		Level:  level,
		Logger: &l.name,
		Data:   data,
	}
	var err error
	request.Params, err = json.Marshal(params)
	if err != nil {
		return err
	}
	return l.notifier.Notify(ctx, request)
}

func (l *Logger) Debug(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.LoggingLevelDebug, data)
}

func (l *Logger) Info(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Info, data)
}

func (l *Logger) Notice(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Notice, data)
}

func (l *Logger) Warning(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Warning, data)
}

func (l *Logger) Error(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.LoggingLevelError, data)
}

func (l *Logger) Critical(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Critical, data)
}

func NewLogger(name string, level *levelHolder, notifier transport.Notifier) *Logger {
	if level == nil {
		level = &levelHolder{}
	}
	return &Logger{
		name:     name,
		level:    level,
		notifier: notifier,
	}
}
