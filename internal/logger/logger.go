package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Context keys the auth middleware and request-id middleware populate with
// c.Set. *gin.Context.Value resolves string keys from c.Keys, and transaction
// contexts are derived from the *gin.Context, so both resolve them.
const (
	UserIDKey    = "user_id"
	RoleKey      = "role"
	RequestIDKey = "request_id"
)

// Logger is a logrus entry carrying request fields
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logrus logger. Unknown levels fall back to
// info. json selects the JSON formatter used by the server; the text
// formatter suits command line tools.
func Setup(level string, json bool) {
	SetupOutput(os.Stdout, level, json)
}

// SetupOutput is Setup writing to w
func SetupOutput(w io.Writer, level string, json bool) {
	logrus.SetOutput(w)
	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// New returns a logger without request fields
func New() *Logger {
	return &Logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithContext returns a logger tagged with the user, role and request id
// found on ctx. Requests without a user are logged as anonymous.
func WithContext(ctx context.Context) *Logger {
	l := New()
	if ctx == nil {
		return l
	}

	fields := logrus.Fields{"user": "anonymous"}
	if userID := stringValue(ctx, UserIDKey); userID != "" {
		fields["user"] = userID
	}
	if role := stringValue(ctx, RoleKey); role != "" {
		fields["role"] = role
	}
	if requestID := stringValue(ctx, RequestIDKey); requestID != "" {
		fields["request_id"] = requestID
	}
	l.Entry = l.Entry.WithFields(fields)
	return l
}

func stringValue(ctx context.Context, key string) string {
	switch v := ctx.Value(key).(type) {
	case string:
		return v
	case interface{ String() string }:
		return v.String()
	}
	return ""
}
