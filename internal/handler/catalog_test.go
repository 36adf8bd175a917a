package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/csr-assistant/internal/handler"
)

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(&mockBookingServicer{}).ServeHTTP(rec, req)
	return rec
}

func TestListServices_catalogOrder(t *testing.T) {
	rec := get(t, "/api/services")

	require.Equal(t, http.StatusOK, rec.Code)
	var items []handler.ServiceItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	assert.Equal(t, []handler.ServiceItem{
		{ID: "plumbing", Name: "Plumbing"},
		{ID: "electrical", Name: "Electrical"},
		{ID: "hvac", Name: "Hvac"},
	}, items)
}

func TestListZipCodes(t *testing.T) {
	rec := get(t, "/api/zip-codes")

	require.Equal(t, http.StatusOK, rec.Code)
	var zips []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&zips))
	assert.Equal(t, []string{"94110", "94115"}, zips)
}

func TestListTechnicians_declarationOrder(t *testing.T) {
	rec := get(t, "/api/technicians")

	require.Equal(t, http.StatusOK, rec.Code)
	var techs []handler.TechnicianItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&techs))
	require.Len(t, techs, 2)
	assert.Equal(t, "Alice", techs[0].Name)
	assert.Equal(t, []string{"plumbing", "hvac"}, techs[0].Services)
	assert.Equal(t, "Bob", techs[1].Name)
	assert.Equal(t, []string{"94110"}, techs[1].ZipCodes)
}

func TestGetFAQ(t *testing.T) {
	tests := []struct {
		question  string
		wantTopic string
	}{
		{"What services do you offer?", "services"},
		{"Where are you located?", "zip_codes"},
		{"Which zip codes do you cover?", "zip_codes"},
	}
	for _, tc := range tests {
		t.Run(tc.question, func(t *testing.T) {
			rec := get(t, "/api/faq?q="+url.QueryEscape(tc.question))

			require.Equal(t, http.StatusOK, rec.Code)
			var body handler.FAQAnswer
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.wantTopic, body.Topic)
			assert.NotEmpty(t, body.Items)
			assert.NotEmpty(t, body.Response)
		})
	}
}

func TestGetFAQ_404_Unhandled(t *testing.T) {
	rec := get(t, "/api/faq?q="+url.QueryEscape("do you like cats"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Code)
}

func TestGetFAQ_400_MissingQuestion(t *testing.T) {
	rec := get(t, "/api/faq")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
