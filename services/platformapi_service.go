package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"
)

// PlatformAPIService talks to the platform's nutrition API, the external
// owner of diary data. The console never writes through this client.
type PlatformAPIService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewPlatformAPIService() *PlatformAPIService {
	return &PlatformAPIService{
		baseURL: os.Getenv("PLATFORM_API_URL"),
		apiKey:  os.Getenv("PLATFORM_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewPlatformAPIServiceWithBase is used by tests to point at a local server.
func NewPlatformAPIServiceWithBase(baseURL string) *PlatformAPIService {
	s := NewPlatformAPIService()
	s.baseURL = baseURL
	return s
}

type diaryEntry struct {
	Name     string               `json:"name"`
	Quantity json.RawMessage      `json:"quantity"` // number or string, as logged
	Unit     string               `json:"unit"`
	Food     utils.NutrientSource `json:"food"`
}

type diaryResponse struct {
	Meals            map[string][]diaryEntry `json:"meals"`
	Goal             *utils.GoalThresholds   `json:"goal"`
	PercentageOfGoal float64                 `json:"percentageOfGoal"`
}

// DiaryPayload is one subscriber-day of consumption, already converted to
// engine types.
type DiaryPayload struct {
	Meals            map[string][]utils.ConsumedItem
	Goal             *utils.GoalThresholds
	PercentageOfGoal float64
}

// GetDailyDiary fetches the consumed items for one subscriber and date
// (YYYY-MM-DD), keyed by meal name.
func (s *PlatformAPIService) GetDailyDiary(subscriberID uint, date string) (*DiaryPayload, error) {
	u := fmt.Sprintf("%s/v1/subscribers/%d/diary?date=%s", s.baseURL, subscriberID, date)

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build diary request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform diary API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read diary response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("platform diary API error %d: %s", resp.StatusCode, string(body))
	}

	var dr diaryResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return nil, fmt.Errorf("failed to parse diary JSON: %w", err)
	}

	out := &DiaryPayload{
		Meals:            make(map[string][]utils.ConsumedItem, len(dr.Meals)),
		Goal:             dr.Goal,
		PercentageOfGoal: dr.PercentageOfGoal,
	}
	for meal, entries := range dr.Meals {
		items := make([]utils.ConsumedItem, 0, len(entries))
		for _, e := range entries {
			item := utils.ConsumedItem{Name: e.Name, Unit: e.Unit, Source: e.Food}
			item.Quantity, item.QuantityText = splitQuantity(e.Quantity)
			items = append(items, item)
		}
		out.Meals[meal] = items
	}
	return out, nil
}

// splitQuantity keeps a numeric quantity as a number and hands anything else
// to the engine's string parser. Malformed values degrade to zero there.
func splitQuantity(raw json.RawMessage) (float64, string) {
	if len(raw) == 0 {
		return 0, ""
	}
	if v, err := strconv.ParseFloat(string(raw), 64); err == nil {
		return v, ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return 0, s
	}
	return 0, ""
}
