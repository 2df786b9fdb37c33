package zombie

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ActionType is the kind of advisory robots-directive change.
type ActionType string

const (
	ActionAddNoindex    ActionType = "add-noindex"
	ActionRemoveNoindex ActionType = "remove-noindex"
)

// Action is one advisory record for the rendering/metadata layer to
// apply. The detector itself never mutates the site.
type Action struct {
	ID        string     `json:"id"`
	Type      ActionType `json:"type"`
	URL       string     `json:"url"`
	Reason    string     `json:"reason"`
	CreatedAt time.Time  `json:"createdAt"`
}

// AutoNoindex walks the current zombie pages and emits one
// add-noindex action per page.
func (d *Detector) AutoNoindex(ctx context.Context) []Action {
	report := d.Detect(ctx)

	var actions []Action
	for _, page := range report.Pages {
		if !page.IsZombie {
			continue
		}
		actions = append(actions, d.newAction(ActionAddNoindex, page.URL,
			fmt.Sprintf("zombie score %.2f at or above %.2f", page.ZombieScore, ZombieThreshold)))
	}
	return actions
}

// Restore emits a record removing the noindex directive for one page.
func (d *Detector) Restore(ctx context.Context, url string) Action {
	return d.newAction(ActionRemoveNoindex, url, "manual restore")
}

func (d *Detector) newAction(t ActionType, url, reason string) Action {
	now := d.now()
	return Action{
		ID:        ulid.MustNew(ulid.Timestamp(now), d.entropy).String(),
		Type:      t,
		URL:       url,
		Reason:    reason,
		CreatedAt: now,
	}
}
