package report

import (
	"context"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
)

/*=================Record Provider======================*/

// RecordProvider hands out the current session dataset. Implemented by
// the dataset cache.
type RecordProvider interface {
	GetRecords(ctx context.Context, force bool) ([]models.SessionRecord, error)
	Clear()
	Checksum() string
	LastFetched() time.Time
}
