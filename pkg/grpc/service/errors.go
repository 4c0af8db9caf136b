package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/KevoDB/chunkbench/pkg/engine"
)

// codeKinds maps engine errors to status codes. Order matters for errors that
// carry more than one kind.
var codeKinds = []struct {
	kind error
	code codes.Code
}{
	{engine.ErrEngineClosed, codes.Unavailable},
	{engine.ErrAbsentEntry, codes.NotFound},
	{engine.ErrSizeExceeded, codes.InvalidArgument},
	{engine.ErrOutOfBounds, codes.InvalidArgument},
	{engine.ErrInvalidEncoding, codes.InvalidArgument},
	{engine.ErrResourceExhausted, codes.ResourceExhausted},
	{engine.ErrCorrupt, codes.DataLoss},
	{context.Canceled, codes.Canceled},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// ToStatus converts an engine error to a gRPC status error. The status
// message starts with the engine sentinel text so clients can recover the
// exact kind among kinds sharing a code. Unavailable statuses carry retryAfter
// as a RetryInfo detail when it is positive.
func ToStatus(err error, retryAfter time.Duration) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	msg := err.Error()
	for _, k := range codeKinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		prefix := k.kind.Error()
		if !strings.HasPrefix(msg, prefix) {
			msg = prefix + ": " + msg
		}
		st := status.New(k.code, msg)
		if k.code == codes.Unavailable && retryAfter > 0 {
			if detailed, derr := st.WithDetails(&errdetails.RetryInfo{RetryDelay: durationpb.New(retryAfter)}); derr == nil {
				st = detailed
			}
		}
		return st.Err()
	}
	return status.Error(codes.Internal, msg)
}
