package models

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	testData := map[string]string{"key": "value"}

	before := time.Now().UnixMilli()
	response := NewResponse(http.StatusCreated, testData, "Resource Created")
	after := time.Now().UnixMilli()

	assert.Equal(t, http.StatusCreated, response.Code)
	assert.Equal(t, testData, response.Data)
	assert.Equal(t, "Resource Created", response.Text)
	assert.Equal(t, 1, response.Version)
	assert.GreaterOrEqual(t, response.CurrentTime, before)
	assert.LessOrEqual(t, response.CurrentTime, after)
}

func TestNewEntryResponse(t *testing.T) {
	entry := PieFigure{ID: "success-pie-chart", Title: "Total Success Launches By Site"}

	response := NewEntryResponse(entry)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "Response data should be a map")
	assert.Equal(t, entry, data["entry"])
}

func TestNewListResponse(t *testing.T) {
	list := []DropdownOption{{Label: "All Sites", Value: "ALL"}}

	response := NewListResponse(list)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "Response data should be a map")
	assert.Equal(t, list, data["list"])
}

func TestResponseModelJSONFieldNames(t *testing.T) {
	b, err := json.Marshal(NewOKResponse(nil))
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, key := range []string{"code", "currentTime", "data", "text", "version"} {
		assert.Contains(t, raw, key)
	}
}

func TestFigureTotals(t *testing.T) {
	pie := PieFigure{Slices: []PieSlice{{Label: "Success", Value: 4}, {Label: "Failure", Value: 1}}}
	assert.Equal(t, 5.0, pie.Total())

	scatter := ScatterFigure{Series: []ScatterSeries{
		{Name: "FT", Points: make([]ScatterPoint, 3)},
		{Name: "B4", Points: make([]ScatterPoint, 2)},
	}}
	assert.Equal(t, 5, scatter.PointCount())
	assert.Equal(t, 0, ScatterFigure{}.PointCount())
}

func TestScatterPointJSON(t *testing.T) {
	b, err := json.Marshal(ScatterPoint{PayloadMassKg: 2490, Class: 1, LaunchSite: "KSC LC-39A"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":2490,"y":1,"launchSite":"KSC LC-39A"}`, string(b))
}
