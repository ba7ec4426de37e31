// Package providers holds thin HTTP clients for the external services the
// core consumes through interfaces: prayer times and chat completion.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/om607397-wq/namaa/internal/models"
)

// DefaultPrayerTimesBaseURL is the AlAdhan-compatible timings endpoint.
const DefaultPrayerTimesBaseURL = "https://api.aladhan.com/v1"

// HTTPPrayerTimesProvider fetches timings from an AlAdhan-style API. The
// response is treated as pure external data; callers decide about retries.
type HTTPPrayerTimesProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPrayerTimesProvider creates a provider against baseURL (empty means
// the public AlAdhan API).
func NewHTTPPrayerTimesProvider(baseURL string) *HTTPPrayerTimesProvider {
	if baseURL == "" {
		baseURL = DefaultPrayerTimesBaseURL
	}
	return &HTTPPrayerTimesProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// timingsResponse mirrors the subset of the AlAdhan payload we read.
type timingsResponse struct {
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
	} `json:"data"`
}

// Times fetches the five prayer times for a location and a DD-MM-YYYY or
// YYYY-MM-DD date key.
func (p *HTTPPrayerTimesProvider) Times(ctx context.Context, lat, lng float64, date string) (models.PrayerTimes, error) {
	endpoint := fmt.Sprintf("%s/timings/%s", p.baseURL, url.PathEscape(date))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.PrayerTimes{}, fmt.Errorf("build prayer times request: %w", err)
	}
	q := req.URL.Query()
	q.Set("latitude", fmt.Sprintf("%f", lat))
	q.Set("longitude", fmt.Sprintf("%f", lng))
	req.URL.RawQuery = q.Encode()

	resp, err := p.client.Do(req)
	if err != nil {
		return models.PrayerTimes{}, fmt.Errorf("fetch prayer times: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.PrayerTimes{}, fmt.Errorf("prayer times API returned status %d", resp.StatusCode)
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.PrayerTimes{}, fmt.Errorf("decode prayer times response: %w", err)
	}
	t := body.Data.Timings
	return models.PrayerTimes{
		Fajr: t.Fajr, Dhuhr: t.Dhuhr, Asr: t.Asr,
		Maghrib: t.Maghrib, Isha: t.Isha,
	}, nil
}
