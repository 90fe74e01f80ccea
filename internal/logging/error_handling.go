package logging

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Cleanup helpers for defer statements. Each one swallows the failure after
// logging it, tagged with the operation and the kind of resource.

func logCleanupFailure(logger *slog.Logger, message string, err error, operation, component string) {
	LogError(logger, message, err,
		slog.String("operation", operation),
		slog.String("component", component))
}

func SafeCloseWithLogging(closer io.Closer, logger *slog.Logger, operation string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logCleanupFailure(logger, "failed to close resource", err, operation, "resource_management")
	}
}

// SafeRollbackWithLogging is silent on sql.ErrTxDone, which every
// rollback deferred ahead of a successful Commit returns.
func SafeRollbackWithLogging(tx interface{ Rollback() error }, logger *slog.Logger, operation string) {
	if tx == nil {
		return
	}
	err := tx.Rollback()
	if err == nil || errors.Is(err, sql.ErrTxDone) {
		return
	}
	logCleanupFailure(logger, "failed to rollback transaction", err, operation, "database")
}

// HandleDeferredError runs deferredOp on behalf of a function with named
// result *originalErr. A cleanup failure is always logged but only becomes
// the result when nothing failed before it.
func HandleDeferredError(originalErr *error, deferredOp func() error, logger *slog.Logger, operation string) {
	if deferredOp == nil {
		return
	}
	err := deferredOp()
	if err == nil {
		return
	}

	logCleanupFailure(logger, "deferred operation failed", err, operation, "deferred_cleanup")
	if *originalErr == nil {
		*originalErr = fmt.Errorf("%s failed: %w", operation, err)
	}
}
