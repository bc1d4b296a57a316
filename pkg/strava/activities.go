package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/velograph/velograph/pkg/activity"
)

// apiActivity mirrors the fields of a SummaryActivity item we consume.
// Strava serves start_date_local with a Z suffix; only its wall-clock
// components are meaningful.
type apiActivity struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	StartDate          time.Time `json:"start_date"`
	StartDateLocal     time.Time `json:"start_date_local"`
	Timezone           string    `json:"timezone"`
	Distance           float64   `json:"distance"`
	MovingTime         int       `json:"moving_time"`
	ElapsedTime        int       `json:"elapsed_time"`
	TotalElevationGain float64   `json:"total_elevation_gain"`
	Commute            bool      `json:"commute"`
	KudosCount         int       `json:"kudos_count"`
	TotalPhotoCount    int       `json:"total_photo_count"`
}

// FetchActivities pages through the athlete's full activity history and
// returns the normalized record set. Items that fail validation are skipped
// individually; request failures abort the fetch so the previous record set
// is never replaced by a partial one.
func (c *Client) FetchActivities(ctx context.Context) ([]activity.Activity, error) {
	if c.accessToken == "" {
		if err := c.RefreshAccessToken(ctx); err != nil {
			return nil, err
		}
	}

	var all []activity.Activity
	skipped := 0

	for page := 1; page <= maxPages; page++ {
		apiURL := fmt.Sprintf("%s/api/v3/athlete/activities?per_page=%d&page=%d", c.baseURL, activitiesPerPage, page)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.accessToken)

		resp, err := c.doWithRetry(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetching activities page %d: %w", page, err)
		}

		var items []apiActivity
		decodeErr := json.NewDecoder(resp.Body).Decode(&items)
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug("failed to close response body", "error", err)
		}
		if decodeErr != nil {
			return nil, fmt.Errorf("decoding activities page %d: %w", page, decodeErr)
		}

		if len(items) == 0 {
			break
		}

		for _, item := range items {
			rec, ok := normalize(item)
			if !ok {
				skipped++
				c.logger.Debug("skipping malformed activity", "id", item.ID, "name", item.Name)
				continue
			}
			all = append(all, rec)
		}

		c.logger.Debug("fetched activities page", "page", page, "count", len(items))

		if len(items) < activitiesPerPage {
			break
		}
	}

	c.logger.Info("fetched activities", "count", len(all), "skipped", skipped)
	return all, nil
}

// normalize validates an API item and maps it into an activity record.
func normalize(item apiActivity) (activity.Activity, bool) {
	if item.ID == 0 || item.StartDate.IsZero() {
		return activity.Activity{}, false
	}
	if item.Distance < 0 || item.MovingTime < 0 || item.ElapsedTime < 0 {
		return activity.Activity{}, false
	}
	return activity.Activity{
		ID:                 item.ID,
		Name:               item.Name,
		Type:               item.Type,
		StartDate:          item.StartDate,
		StartDateLocal:     item.StartDateLocal,
		Timezone:           item.Timezone,
		Distance:           item.Distance,
		MovingTime:         item.MovingTime,
		ElapsedTime:        item.ElapsedTime,
		TotalElevationGain: item.TotalElevationGain,
		Commute:            item.Commute,
		KudosCount:         item.KudosCount,
		PhotoCount:         item.TotalPhotoCount,
	}, true
}
