package leads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planetholiday/models"
)

func TestHTTPFormSenderMapsFields(t *testing.T) {
	var got map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
	}))
	defer srv.Close()

	cfg := models.LeadFormConfig{
		Endpoint: srv.URL,
		FieldMap: map[string]string{
			"name":    "entry.100",
			"email":   "entry.200",
			"message": "entry.300",
			"phone":   "", // unmapped fields are skipped
		},
	}
	data := models.LeadData{
		Name:    "Jo Traveller",
		Email:   "jo@example.com",
		Phone:   "+9412345678",
		Message: "Interested in the hill country tour",
	}

	sender := NewHTTPFormSender()
	require.NoError(t, sender.Send(context.Background(), cfg, data))

	assert.Equal(t, []string{"Jo Traveller"}, got["entry.100"])
	assert.Equal(t, []string{"jo@example.com"}, got["entry.200"])
	assert.Equal(t, []string{"Interested in the hill country tour"}, got["entry.300"])
	assert.NotContains(t, got, "phone")
}

func TestHTTPFormSenderIgnoresStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the real endpoint answers opaquely; its status means nothing
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	sender := NewHTTPFormSender()
	err := sender.Send(context.Background(), models.LeadFormConfig{Endpoint: srv.URL}, models.LeadData{Name: "x"})
	assert.NoError(t, err)
}

func TestHTTPFormSenderNoEndpoint(t *testing.T) {
	sender := NewHTTPFormSender()
	err := sender.Send(context.Background(), models.LeadFormConfig{}, models.LeadData{Name: "x"})

	var serr *models.ExternalServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "leadform", serr.Service)
}

func TestHTTPFormSenderConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before sending

	sender := NewHTTPFormSender()
	err := sender.Send(context.Background(), models.LeadFormConfig{Endpoint: srv.URL}, models.LeadData{Name: "x"})

	var serr *models.ExternalServiceError
	require.ErrorAs(t, err, &serr)
}
