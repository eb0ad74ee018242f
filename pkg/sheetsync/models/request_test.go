package models

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	req := SyncRequest{
		OriginSpreadsheetID:      "origin-book",
		DestinationSpreadsheetID: "dest-book",
	}
	assert.NoError(t, req.Validate())

	missingOrigin := req
	missingOrigin.OriginSpreadsheetID = "  "
	assert.True(t, errors.Is(missingOrigin.Validate(), ErrMissingIdentifier))

	missingDest := req
	missingDest.DestinationSpreadsheetID = ""
	assert.True(t, errors.Is(missingDest.Validate(), ErrMissingIdentifier))
}

func TestDestinationReusesOriginColumns(t *testing.T) {
	req := SyncRequest{
		OriginWorksheetName:        "Data",
		OriginWorksheetFirstColumn: "B",
		OriginWorksheetLastColumn:  "F",
		OriginWorksheetFirstRow:    2,
		OriginWorksheetLastRow:     9,
		DestinationWorksheetName:   "Mirror",
		DestinationWorksheetID:     4,
	}

	dest := req.Destination()
	assert.Equal(t, "Mirror", dest.SheetName)
	assert.Equal(t, 4, dest.SheetID)
	// Destination column bounds are not supplied independently; the
	// origin's bounds apply to destination addresses as well.
	assert.Equal(t, "Mirror!B2:F9", dest.ReadRange())
	assert.Equal(t, "Mirror!B3:F3", dest.RowRange(2))
}

func TestSyncRequestJSONFieldNames(t *testing.T) {
	body := `{
		"originSpreadsheetId": "origin-book",
		"originWorksheetName": "Data",
		"originWorksheetFirstColumn": "A",
		"originWorksheetLastColumn": "C",
		"originWorksheetFirstRow": 1,
		"originWorksheetLastRow": 20,
		"destinationSpreadsheetId": "dest-book",
		"destinationWorksheetId": 3,
		"destinationWorksheetName": "Mirror"
	}`

	var req SyncRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "origin-book", req.OriginSpreadsheetID)
	assert.Equal(t, "Data!A1:C20", req.Origin().ReadRange())
	assert.Equal(t, 3, req.DestinationWorksheetID)
}
