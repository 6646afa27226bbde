package matcher

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/devrev"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/domain"
)

// Matcher locates previously created event custom objects by the Airmeet id
// embedded in their side-channel field
type Matcher struct {
	api devrev.API
	log *zap.Logger
}

// NewMatcher creates a new object matcher
func NewMatcher(api devrev.API, log *zap.Logger) *Matcher {
	return &Matcher{api: api, log: log}
}

// FindEventObject scans all custom objects of the event leaf type and
// returns the first whose parsed tnt__other_info carries the target
// airmeetId. Entries with missing or unparseable side-channel data are
// skipped. The scan is O(n) over the unpaginated listing; acceptable while
// event catalogs stay small.
func (m *Matcher) FindEventObject(ctx context.Context, airmeetID, leafTypeEvent string) *domain.CustomObject {
	if airmeetID == "" {
		return nil
	}

	objects, err := m.api.ListCustomObjects(ctx, leafTypeEvent)
	if err != nil {
		m.log.Warn("Event object listing failed",
			zap.String("leaf_type", leafTypeEvent),
			zap.Error(err))
		return nil
	}

	for i := range objects {
		raw, ok := objects[i].CustomFields[domain.FieldOtherInfo]
		if !ok || raw == "" {
			continue
		}

		var info domain.EventInfo
		if err := json.Unmarshal([]byte(raw), &info); err != nil {
			m.log.Debug("Skipping object with malformed side-channel data",
				zap.String("object_id", objects[i].ID),
				zap.Error(err))
			continue
		}

		if info.AirmeetID == airmeetID {
			return &objects[i]
		}
	}

	return nil
}
