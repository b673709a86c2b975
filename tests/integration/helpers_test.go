//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// unmarshalData decodes the data portion of a GraphQL response.
func unmarshalData(data json.RawMessage, v interface{}) error {
	return json.Unmarshal(data, v)
}

// createTestUser inserts a user row and returns its id. Emails are
// randomized so tests stay independent.
func createTestUser(t *testing.T, role string) string {
	t.Helper()

	email := fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8])

	var id string
	err := testDB.QueryRow(context.Background(),
		`INSERT INTO users (email, role) VALUES ($1, $2) RETURNING id`,
		email, role,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// countSettingsRows counts the persisted settings rows for a user, bypassing
// the API.
func countSettingsRows(t *testing.T, userID string) int {
	t.Helper()

	var count int
	err := testDB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM user_settings WHERE user_id = $1`, userID,
	).Scan(&count)
	require.NoError(t, err)

	return count
}

const updateSettingsMutation = `mutation($userId: ID!, $settings: [SettingInput!]!) {
	updateSettings(userId: $userId, settings: $settings) {
		success
		user { id email role createdAt settingsCount }
		settings { id key value updatedAt updatedBy { id } }
	}
}`

// settingsPayload mirrors the SettingsPayload GraphQL type.
type settingsPayload struct {
	UpdateSettings struct {
		Success bool `json:"success"`
		User    struct {
			ID            string `json:"id"`
			Email         string `json:"email"`
			Role          string `json:"role"`
			CreatedAt     string `json:"createdAt"`
			SettingsCount int    `json:"settingsCount"`
		} `json:"user"`
		Settings []struct {
			ID        string `json:"id"`
			Key       string `json:"key"`
			Value     string `json:"value"`
			UpdatedAt string `json:"updatedAt"`
			UpdatedBy *struct {
				ID string `json:"id"`
			} `json:"updatedBy"`
		} `json:"settings"`
	} `json:"updateSettings"`
}

func settingInputs(pairs ...[2]string) []interface{} {
	inputs := make([]interface{}, 0, len(pairs))
	for _, pair := range pairs {
		inputs = append(inputs, map[string]interface{}{"key": pair[0], "value": pair[1]})
	}
	return inputs
}
