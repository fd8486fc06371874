package profit

import (
	"context"
	"time"

	"github.com/profitlens/backend/internal/domain/profit"
)

// ReportCache is an injected get/put collaborator for computed daily
// reports. The TTL is owned by the caller, not the implementation, so the
// calculator stays a pure function of its explicit inputs plus this port.
// A Get miss is (nil, nil); cache failures are never fatal to computation.
type ReportCache interface {
	Get(ctx context.Context, shop, date string) (*profit.Report, error)
	Put(ctx context.Context, shop, date string, report *profit.Report, ttl time.Duration) error
}
