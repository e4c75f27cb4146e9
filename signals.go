package securevar

import (
	"context"
	"strconv"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for securevar events.
var (
	SignalSetStart     = capitan.NewSignal("securevar.set.start", "Set operation beginning")
	SignalSetComplete  = capitan.NewSignal("securevar.set.complete", "Set operation finished")
	SignalReadStart    = capitan.NewSignal("securevar.read.start", "Read operation beginning")
	SignalReadComplete = capitan.NewSignal("securevar.read.complete", "Read operation finished")
	SignalImported     = capitan.NewSignal("securevar.imported", "Variable built from a raw buffer")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyAlgorithm   = capitan.NewStringKey("algorithm")
	KeyEncrypted   = capitan.NewStringKey("encrypted")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitSetStart emits an event when set begins.
func emitSetStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSetStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSetComplete emits an event when set finishes.
func emitSetComplete(ctx context.Context, contentType, typeName string, algo Algorithm, encrypted bool, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyAlgorithm.Field(string(algo)),
		KeyEncrypted.Field(strconv.FormatBool(encrypted)),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSetComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSetComplete, fields...)
	}
}

// emitReadStart emits an event when read begins.
func emitReadStart(ctx context.Context, contentType, typeName string, size int) {
	capitan.Emit(ctx, SignalReadStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitReadComplete emits an event when read finishes.
func emitReadComplete(ctx context.Context, contentType, typeName string, algo Algorithm, encrypted bool, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyAlgorithm.Field(string(algo)),
		KeyEncrypted.Field(strconv.FormatBool(encrypted)),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReadComplete, fields...)
	}
}

// emitImported emits an event when a variable is built from a raw buffer.
func emitImported(ctx context.Context, contentType, typeName string, algo Algorithm, size int) {
	capitan.Emit(ctx, SignalImported,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyAlgorithm.Field(string(algo)),
		KeySize.Field(size),
	)
}
