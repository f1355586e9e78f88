package nlu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLUClientClassify(t *testing.T) {
	var captured cluRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"result": {
				"prediction": {
					"topIntent": "MakeReservation",
					"entities": [
						{"category": "restaurantName", "text": "Pizza Palace"},
						{"category": "partySize", "text": "4"}
					]
				}
			}
		}`))
	}))
	defer server.Close()

	client := NewCLUClient(server.URL, "test-key", "restaurant-bot", "production")
	result, err := client.Classify(context.Background(), "book a table for 4 at Pizza Palace")
	require.NoError(t, err)

	assert.Equal(t, "MakeReservation", result.TopIntent)
	require.Len(t, result.Entities, 2)
	assert.Equal(t, CategoryRestaurantName, result.Entities[0].Category)
	assert.Equal(t, "Pizza Palace", result.Entities[0].Text)

	assert.Equal(t, "Conversation", captured.Kind)
	assert.Equal(t, "restaurant-bot", captured.Parameters.ProjectName)
	assert.Equal(t, "production", captured.Parameters.DeploymentName)
	assert.Equal(t, "book a table for 4 at Pizza Palace", captured.AnalysisInput.ConversationItem.Text)
}

func TestCLUClientClassifyHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "throttled"}`))
	}))
	defer server.Close()

	client := NewCLUClient(server.URL, "test-key", "restaurant-bot", "production")
	result, err := client.Classify(context.Background(), "anything")
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
