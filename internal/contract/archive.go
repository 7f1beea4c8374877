package contract

import "github.com/huangsam/gridiron/schema"

// RatingsArchiver persists rated season rows after a pipeline run. The
// concrete implementation lives in internal/archive; core only needs the
// write side.
type RatingsArchiver interface {
	SaveRatings(rows []schema.RatedRow) (int, error)
	Close() error
}
