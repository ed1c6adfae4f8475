package ports

import (
	"context"

	"github.com/userhub/auth-service/internal/core/domain"
)

// AuditRecorder accepts auth events for asynchronous persistence. Record must
// not block the request path.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
