package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planetholiday/models"
)

// failingSender stands in for an unreachable form endpoint.
type failingSender struct {
	calls int
}

func (s *failingSender) Send(_ context.Context, _ models.LeadFormConfig, _ models.LeadData) error {
	s.calls++
	return errors.New("endpoint down")
}

// memLeadStore keeps the log in insertion order, which is also timestamp
// order since inserts carry time.Now.
type memLeadStore struct {
	mu    sync.Mutex
	leads []models.BookingLead
}

func (m *memLeadStore) Insert(_ context.Context, lead models.BookingLead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads = append(m.leads, lead)
	return nil
}

func (m *memLeadStore) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.leads)), nil
}

func (m *memLeadStore) Oldest(_ context.Context, limit int64) ([]models.BookingLead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > int64(len(m.leads)) {
		limit = int64(len(m.leads))
	}
	out := make([]models.BookingLead, limit)
	copy(out, m.leads[:limit])
	return out, nil
}

func (m *memLeadStore) DeleteIDs(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := m.leads[:0]
	for _, l := range m.leads {
		if !drop[l.ID] {
			kept = append(kept, l)
		}
	}
	m.leads = kept
	return nil
}

func (m *memLeadStore) List(_ context.Context) ([]models.BookingLead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.BookingLead, len(m.leads))
	for i, l := range m.leads {
		out[len(m.leads)-1-i] = l
	}
	return out, nil
}

func (m *memLeadStore) Get(_ context.Context, id string) (models.BookingLead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return models.BookingLead{}, errors.New("not found")
}

func (m *memLeadStore) SetStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.leads {
		if m.leads[i].ID == id {
			m.leads[i].Status = status
		}
	}
	return nil
}

func (m *memLeadStore) Delete(_ context.Context, id string) error {
	return m.DeleteIDs(context.Background(), []string{id})
}

func newTestRelay(sender FormSender) (*Relay, *memLeadStore) {
	store := &memLeadStore{}
	relay := &Relay{
		sender: sender,
		store:  store,
		cfg:    models.LeadFormConfig{Endpoint: "https://example.com/form", FieldMap: map[string]string{}},
	}
	return relay, store
}

func TestSubmitAppendsWhenSenderFails(t *testing.T) {
	sender := &failingSender{}
	relay, store := newTestRelay(sender)

	lead, err := relay.Submit(context.Background(), models.LeadData{
		Name:  "Nadia",
		Email: "nadia@example.com",
	})
	require.NoError(t, err, "a dead endpoint must not lose the inquiry")
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, models.LeadPending, lead.Status)
	assert.NotEmpty(t, lead.ID)

	stored, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, lead.ID, stored[0].ID)
	assert.Equal(t, "Nadia", stored[0].Name)
}

func TestLeadLogBoundedAtHundred(t *testing.T) {
	relay, store := newTestRelay(&failingSender{})

	var ids []string
	for i := 0; i < 105; i++ {
		lead, err := relay.Submit(context.Background(), models.LeadData{
			Name:  fmt.Sprintf("Visitor %d", i),
			Email: fmt.Sprintf("v%d@example.com", i),
		})
		require.NoError(t, err)
		ids = append(ids, lead.ID)
	}

	stored, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 100, "the log keeps only the newest 100 entries")

	kept := make(map[string]bool, len(stored))
	for _, l := range stored {
		kept[l.ID] = true
	}
	for _, id := range ids[:5] {
		assert.False(t, kept[id], "oldest entries are evicted first")
	}
	for _, id := range ids[5:] {
		assert.True(t, kept[id])
	}
	assert.Equal(t, ids[len(ids)-1], stored[0].ID, "list is newest first")
}

func TestIntegrationSampleLandsInLog(t *testing.T) {
	relay, store := newTestRelay(&failingSender{})

	err := relay.TestIntegration(context.Background())
	require.NoError(t, err, "a send failure is swallowed like any submission")

	stored, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Integration Test", stored[0].Name)
	assert.Equal(t, models.LeadPending, stored[0].Status)
}

func TestListLeadsSearchFilter(t *testing.T) {
	relay, _ := newTestRelay(&failingSender{})
	for _, d := range []models.LeadData{
		{Name: "Amara Perera", Email: "amara@example.com", TourInterest: "Cultural Triangle Explorer"},
		{Name: "Ben Silva", Email: "ben@example.com", TourInterest: "Hill Country Rail"},
	} {
		_, err := relay.Submit(context.Background(), d)
		require.NoError(t, err)
	}

	req := httptest.NewRequest("GET", "/api/admin/leads?q=cultural", nil)
	rec := httptest.NewRecorder()
	ListLeads(relay)(rec, req, nil)

	require.Equal(t, 200, rec.Code)
	var got []models.BookingLead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Amara Perera", got[0].Name)
}
