package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiaryJSON = `{
	"meals": {
		"breakfast": [
			{
				"name": "Iaurt",
				"quantity": "130Grame",
				"unit": "Grame",
				"food": {
					"type": "food",
					"totalCalories": 60,
					"proteinsInGrams": 4,
					"carbohydratesInGrams": 6,
					"fatInGrams": 2
				}
			}
		],
		"lunch": [
			{
				"name": "Ciorba de legume",
				"quantity": 2,
				"unit": "Portie (250.0g)",
				"food": {
					"type": "recipe",
					"totalCalories": 400,
					"proteinsInGrams": 12,
					"numberOfServings": 4,
					"servings": [{"profileId": 1, "name": "Portie", "amount": 250}]
				}
			}
		]
	},
	"goal": {"calories": 2000, "protein": 150, "carbs": 200, "fat": 60},
	"percentageOfGoal": 41
}`

func TestGetDailyDiary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/subscribers/7/diary", r.URL.Path)
		assert.Equal(t, "2024-03-18", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDiaryJSON))
	}))
	defer srv.Close()

	api := NewPlatformAPIServiceWithBase(srv.URL)
	payload, err := api.GetDailyDiary(7, "2024-03-18")
	require.NoError(t, err)

	require.Len(t, payload.Meals, 2)
	require.Len(t, payload.Meals["breakfast"], 1)

	// string quantity is handed to the engine's parser untouched
	breakfast := payload.Meals["breakfast"][0]
	assert.Equal(t, 0.0, breakfast.Quantity)
	assert.Equal(t, "130Grame", breakfast.QuantityText)
	assert.Equal(t, "food", breakfast.Source.Type)

	// numeric quantity stays numeric
	lunch := payload.Meals["lunch"][0]
	assert.Equal(t, 2.0, lunch.Quantity)
	assert.Equal(t, "", lunch.QuantityText)
	require.Len(t, lunch.Source.Servings, 1)
	assert.Equal(t, 250.0, lunch.Source.Servings[0].Amount)

	require.NotNil(t, payload.Goal)
	assert.Equal(t, 2000.0, payload.Goal.Calories)
	assert.Equal(t, 41.0, payload.PercentageOfGoal)
}

func TestGetDailyDiaryUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "subscriber not found", http.StatusNotFound)
	}))
	defer srv.Close()

	api := NewPlatformAPIServiceWithBase(srv.URL)
	_, err := api.GetDailyDiary(999, "2024-03-18")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetDailyDiaryBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	api := NewPlatformAPIServiceWithBase(srv.URL)
	_, err := api.GetDailyDiary(1, "2024-03-18")
	require.Error(t, err)
}
