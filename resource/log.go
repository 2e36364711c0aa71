package resource

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	_ zapcore.ObjectMarshaler = (*Error)(nil)
	_ slog.LogValuer          = (*Error)(nil)
)

// MarshalLogObject encodes the failure for zap.Object.
// The cause chain is emitted as an ordered array of per-level messages.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e == nil {
		return nil
	}

	enc.AddString("message", e.message)
	if e.location != "" {
		enc.AddString("location", e.location)
	}
	enc.AddBool("contextual", true)

	if e.cause == nil {
		return nil
	}

	return enc.AddArray("causes", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, m := range Messages(e.cause) {
			arr.AppendString(m)
		}
		return nil
	}))
}

// LogValue renders the failure as an slog group with the same keys as MarshalLogObject.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}

	attrs := []slog.Attr{slog.String("message", e.message)}
	if e.location != "" {
		attrs = append(attrs, slog.String("location", e.location))
	}
	attrs = append(attrs, slog.Bool("contextual", true))
	if e.cause != nil {
		attrs = append(attrs, slog.Any("causes", Messages(e.cause)))
	}

	return slog.GroupValue(attrs...)
}

// Field returns the richest zap field for err under the "error" key.
// Resource failures are encoded as objects; everything else goes through zap.Error.
func Field(err error) zap.Field {
	if e, ok := err.(*Error); ok && e != nil {
		return zap.Object("error", e)
	}

	return zap.Error(err)
}
