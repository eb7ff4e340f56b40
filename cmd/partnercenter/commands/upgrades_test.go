//nolint:testpackage // Need access to internal types
package commands

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
)

func TestUpgradeRequest(t *testing.T) {
	t.Parallel()

	request, err := upgradeRequest("c1", "azure")
	require.NoError(t, err)
	assert.Equal(t, "c1", request.CustomerID)
	assert.Equal(t, "azure", request.ProductFamily)

	_, err = upgradeRequest("c1", "")
	require.ErrorIs(t, err, ErrFamilyRequired)
}

func TestUpgradesCreateCommand(t *testing.T) {
	t.Run("returns location", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/productUpgrades", r.URL.Path)

			w.Header().Set("Location", "/productUpgrades/42f9a237")
			w.WriteHeader(http.StatusAccepted)
		})
		output := captureOutput(t, constants.FormatJSON)

		require.NoError(t, execute(newUpgradesCreateCommand(), "c1", "--family", "azure"))

		var created UpgradeCreated
		require.NoError(t, json.Unmarshal(output.Bytes(), &created))
		assert.Equal(t, UpgradeCreated{CustomerID: "c1", ProductFamily: "azure", Location: "/productUpgrades/42f9a237"}, created)
	})

	t.Run("without location", func(t *testing.T) {
		newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
		output := captureOutput(t, constants.FormatTable)

		require.NoError(t, execute(newUpgradesCreateCommand(), "c1", "--family", "azure"))
		assert.Contains(t, output.String(), constants.NotAvailable)
	})

	t.Run("requires family", func(t *testing.T) {
		captureOutput(t, constants.FormatTable)

		err := execute(newUpgradesCreateCommand(), "c1")
		require.ErrorIs(t, err, ErrFamilyRequired)
	})
}

func TestUpgradesStatusCommand(t *testing.T) {
	newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/productUpgrades/42f9a237/status", r.URL.Path)

		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"id":            "42f9a237",
			"productFamily": "azure",
			"status":        "inProgress",
			"lineItems": []map[string]interface{}{
				{
					"sourceProduct": map[string]interface{}{"id": "MS-AZR-0145P", "name": "Azure"},
					"targetProduct": map[string]interface{}{"id": "DZH318Z0BPS6", "name": "Azure plan"},
					"status":        "inProgress",
				},
			},
		})
	})
	output := captureOutput(t, constants.FormatTable)

	require.NoError(t, execute(newUpgradesStatusCommand(), "c1", "42f9a237", "--family", "azure"))
	assert.Contains(t, output.String(), "Upgrade 42f9a237: InProgress")
	assert.Contains(t, output.String(), "Azure plan")
}
