package firestore

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"expensed/internal/core"
)

// mapStatusErr translates a Firestore gRPC status into the error taxonomy so
// nothing backend-specific crosses the store boundary.
func mapStatusErr(op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return core.NewError(core.KindNotFound, op, err)
	case codes.PermissionDenied:
		return core.NewError(core.KindPermission, op, err)
	case codes.FailedPrecondition:
		// Range queries over createdAt need a composite index; until the
		// deployment provisions it the query cannot succeed, and retrying
		// changes nothing.
		return core.NewError(core.KindQueryUnsupported,
			op+": query requires a Firestore index that has not been provisioned", err)
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted, codes.ResourceExhausted:
		return core.NewError(core.KindStorageUnavailable, op, err)
	default:
		return core.NewError(core.KindInternal, op, err)
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
