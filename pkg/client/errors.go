package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KevoDB/chunkbench/pkg/engine"
	"github.com/KevoDB/chunkbench/pkg/transport"
)

// FromStatus converts a gRPC status error returned by the bench service back
// to the engine error it was made from. Connection failures become temporary
// transport errors, and an Unavailable status carrying a RetryInfo detail
// becomes temporary with that delay as its retry hint.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	msg := st.Message()

	switch st.Code() {
	case codes.NotFound:
		return withKind(engine.ErrAbsentEntry, msg)
	case codes.InvalidArgument:
		for _, kind := range []error{engine.ErrSizeExceeded, engine.ErrOutOfBounds, engine.ErrInvalidEncoding} {
			if strings.HasPrefix(msg, kind.Error()) {
				return withKind(kind, msg)
			}
		}
		return errors.New(msg)
	case codes.ResourceExhausted:
		return withKind(engine.ErrResourceExhausted, msg)
	case codes.DataLoss:
		return withKind(engine.ErrCorrupt, msg)
	case codes.Unavailable:
		hint := retryDelay(st)
		if strings.HasPrefix(msg, engine.ErrEngineClosed.Error()) {
			closed := withKind(engine.ErrEngineClosed, msg)
			if hint > 0 {
				return transport.TemporaryAfter(closed, hint)
			}
			return closed
		}
		return transport.TemporaryAfter(fmt.Errorf("%w: %s", transport.ErrConnectionFailed, msg), hint)
	case codes.Canceled:
		return withKind(context.Canceled, msg)
	case codes.DeadlineExceeded:
		return withKind(context.DeadlineExceeded, msg)
	default:
		return fmt.Errorf("%s: %s", st.Code(), msg)
	}
}

// retryDelay returns the RetryInfo delay attached to st, or zero
func retryDelay(st *status.Status) time.Duration {
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.RetryInfo); ok {
			return info.GetRetryDelay().AsDuration()
		}
	}
	return 0
}

// withKind rebuilds an error whose message starts with kind's text so it
// matches kind with errors.Is and reads the same as on the server
func withKind(kind error, msg string) error {
	detail := strings.TrimPrefix(strings.TrimPrefix(msg, kind.Error()), ": ")
	if detail == "" {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, detail)
}
