package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

func testContext(target string, params ...gin.Param) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	return c
}

func TestPathID(t *testing.T) {
	id, err := pathID(testContext("/students/12", gin.Param{Key: "id", Value: "12"}))
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"abc", "0", "-3", ""} {
		_, err := pathID(testContext("/students/x", gin.Param{Key: "id", Value: raw}))
		assert.ErrorIs(t, err, appErrors.ErrNotFound, raw)
	}
}

func TestQueryFilters(t *testing.T) {
	c := testContext("/attendance?classId=4&date=2024-10-07T13:00:00Z")

	classID, err := queryID(c, "classId")
	require.NoError(t, err)
	assert.Equal(t, int64(4), classID)

	studentID, err := queryID(c, "studentId")
	require.NoError(t, err)
	assert.Zero(t, studentID)

	day, err := queryDate(c, "date")
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, "2024-10-07", day.String())

	_, err = queryID(testContext("/attendance?classId=four"), "classId")
	appErr := appErrors.FromError(err)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "classId", appErr.Details[0].Field)
}

func TestBindJSONNamesWrongTypedField(t *testing.T) {
	c := testContext("/grades")
	c.Request = httptest.NewRequest(http.MethodPost, "/grades", strings.NewReader(`{"classId":"one"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var payload struct {
		ClassID int64 `json:"classId"`
	}
	err := bindJSON(c, &payload)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, appErrors.FieldError{Field: "classId", Message: "must be an integer"}, appErr.Details[0])
}

func TestBindJSONMalformedBodyHasNoDetails(t *testing.T) {
	c := testContext("/grades")
	c.Request = httptest.NewRequest(http.MethodPost, "/grades", strings.NewReader(`{not json`))

	var payload struct{}
	err := bindJSON(c, &payload)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid payload", appErr.Message)
	assert.Empty(t, appErr.Details)
}
