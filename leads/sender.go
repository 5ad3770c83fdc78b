package leads

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"planetholiday/models"
)

// FormSender forwards a lead to the external form endpoint. The endpoint
// is opaque: it never confirms receipt in a readable way, so a nil return
// only means the request itself completed. Callers must not treat a nil
// error as proof of delivery.
type FormSender interface {
	Send(ctx context.Context, cfg models.LeadFormConfig, data models.LeadData) error
}

type HTTPFormSender struct {
	Client *http.Client
}

func NewHTTPFormSender() *HTTPFormSender {
	return &HTTPFormSender{Client: &http.Client{Timeout: 10 * time.Second}}
}

// Send maps logical lead fields to the endpoint's entry ids and posts the
// form. Fields without a mapping are skipped.
func (s *HTTPFormSender) Send(ctx context.Context, cfg models.LeadFormConfig, data models.LeadData) error {
	if cfg.Endpoint == "" {
		return &models.ExternalServiceError{Service: "leadform", Err: fmt.Errorf("no endpoint configured")}
	}

	values := url.Values{}
	for field, entry := range cfg.FieldMap {
		if entry == "" {
			continue
		}
		if v := fieldValue(data, field); v != "" {
			values.Set(entry, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return &models.ExternalServiceError{Service: "leadform", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.Client.Do(req)
	if err != nil {
		return &models.ExternalServiceError{Service: "leadform", Err: err}
	}
	resp.Body.Close()
	// Even error status codes count as "sent": the endpoint answers
	// opaquely and its status carries no signal about the submission.
	return nil
}

func fieldValue(data models.LeadData, field string) string {
	switch field {
	case "name":
		return data.Name
	case "email":
		return data.Email
	case "phone":
		return data.Phone
	case "tourInterest":
		return data.TourInterest
	case "travelDates":
		return data.TravelDates
	case "groupSize":
		return data.GroupSize
	case "message":
		return data.Message
	}
	return ""
}
