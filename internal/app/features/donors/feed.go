// internal/app/features/donors/feed.go
package donors

import (
	"context"
	"net/http"

	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/respond"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/timeouts"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/matching"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
)

// feedItem is one alert in a donor's feed, flagged with whether this donor
// already replied to it.
type feedItem struct {
	models.Alert
	Responded bool `json:"responded"`
}

// Feed handles GET /donors/feed?email=: the alerts a donor should see,
// resolved through the directory. The donor's group decides visibility and
// their email decides the responded flag.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respond.Fail(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	donor, err := h.Donors.GetByEmail(ctx, email)
	if err != nil {
		respond.Err(w, h.Log, "donor feed lookup", err)
		return
	}

	all, err := h.Alerts.ListFor(ctx, "")
	if err != nil {
		respond.Err(w, h.Log, "donor feed alerts", err)
		return
	}

	feed := make([]feedItem, 0, len(all))
	for _, alert := range all {
		if !matching.Matches(alert, donor.Blood) {
			continue
		}
		feed = append(feed, feedItem{
			Alert:     alert,
			Responded: matching.HasResponded(alert, donor.Email),
		})
	}
	respond.OK(w, map[string]any{"success": true, "alerts": feed})
}
