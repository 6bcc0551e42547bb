package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/zeromicro/go-zero/core/logx"
)

// logxLogger Watermill 日志适配器，把 watermill 内部日志转给 go-zero logx
type logxLogger struct {
	fields watermill.LogFields
}

func newLogxLogger() watermill.LoggerAdapter {
	return &logxLogger{}
}

// Error 输出错误日志
func (l *logxLogger) Error(msg string, err error, fields watermill.LogFields) {
	logx.Errorf("watermill: %s, err=%v, fields=%v", msg, err, l.fields.Add(fields))
}

// Info 输出信息日志
func (l *logxLogger) Info(msg string, fields watermill.LogFields) {
	logx.Infof("watermill: %s, fields=%v", msg, l.fields.Add(fields))
}

// Debug 输出调试日志
func (l *logxLogger) Debug(msg string, fields watermill.LogFields) {
	logx.Debugf("watermill: %s, fields=%v", msg, l.fields.Add(fields))
}

// Trace 输出跟踪日志
func (l *logxLogger) Trace(msg string, fields watermill.LogFields) {
	logx.Debugf("watermill: %s, fields=%v", msg, l.fields.Add(fields))
}

// With 附加字段
func (l *logxLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &logxLogger{fields: l.fields.Add(fields)}
}
