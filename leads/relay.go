package leads

import (
	"context"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"planetholiday/db"
	"planetholiday/models"
	"planetholiday/utils"
)

// maxStoredLeads bounds the local lead log; the oldest entries are
// trimmed once the bound is exceeded.
const maxStoredLeads = 100

const configKey = "leadform"

// Relay fans a submitted lead out to the external form endpoint and the
// local bounded log. The external send is best effort: its failure never
// blocks the local record.
type Relay struct {
	mu     sync.RWMutex
	cfg    models.LeadFormConfig
	sender FormSender
	store  leadStore
}

func NewRelay(sender FormSender) *Relay {
	r := &Relay{sender: sender, store: mongoLeadStore{}}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Reload(ctx); err != nil {
		log.Printf("lead relay: using default config: %v", err)
	}
	return r
}

// Reload re-reads the form config from storage, falling back to the
// LEAD_FORM_ENDPOINT env var when no record exists yet.
func (r *Relay) Reload(ctx context.Context) error {
	var cfg models.LeadFormConfig
	err := db.LeadConfigCollection.FindOne(ctx, bson.M{"_id": configKey}).Decode(&cfg)
	if err != nil {
		cfg = models.LeadFormConfig{
			Endpoint: os.Getenv("LEAD_FORM_ENDPOINT"),
			FieldMap: map[string]string{},
		}
	}

	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()

	if err != nil && err != mongo.ErrNoDocuments {
		return err
	}
	return nil
}

func (r *Relay) Config() models.LeadFormConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// UpdateConfig persists the new config and swaps it in for subsequent
// submissions.
func (r *Relay) UpdateConfig(ctx context.Context, cfg models.LeadFormConfig) error {
	if cfg.FieldMap == nil {
		cfg.FieldMap = map[string]string{}
	}
	_, err := db.LeadConfigCollection.ReplaceOne(ctx,
		bson.M{"_id": configKey}, cfg, options.Replace().SetUpsert(true))
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()
	return nil
}

// Submit sends the lead to the external endpoint and records it locally.
// A send failure is logged and swallowed; the local record is the source
// of truth for the team either way.
func (r *Relay) Submit(ctx context.Context, data models.LeadData) (models.BookingLead, error) {
	if err := r.sender.Send(ctx, r.Config(), data); err != nil {
		log.Printf("lead relay: external send failed: %v", err)
	}
	return r.StoreLocally(ctx, data)
}

// StoreLocally appends the lead to the bounded log. Ids carry the
// submission clock so the log stays sortable, plus a short random suffix
// against same-nanosecond collisions.
func (r *Relay) StoreLocally(ctx context.Context, data models.LeadData) (models.BookingLead, error) {
	now := time.Now()
	lead := models.BookingLead{
		ID:        strconv.FormatInt(now.UnixNano(), 10) + utils.GenerateRandomDigitString(4),
		LeadData:  data,
		Timestamp: now,
		Status:    models.LeadPending,
	}

	if err := r.store.Insert(ctx, lead); err != nil {
		return models.BookingLead{}, err
	}

	if err := r.trim(ctx); err != nil {
		log.Printf("lead relay: trim failed: %v", err)
	}
	return lead, nil
}

// trim deletes the oldest entries beyond maxStoredLeads.
func (r *Relay) trim(ctx context.Context) error {
	total, err := r.store.Count(ctx)
	if err != nil {
		return err
	}
	excess := total - maxStoredLeads
	if excess <= 0 {
		return nil
	}

	oldest, err := r.store.Oldest(ctx, excess)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(oldest))
	for _, l := range oldest {
		ids = append(ids, l.ID)
	}
	return r.store.DeleteIDs(ctx, ids)
}

// ListAll returns the log newest first.
func (r *Relay) ListAll(ctx context.Context) ([]models.BookingLead, error) {
	return r.store.List(ctx)
}

func (r *Relay) Get(ctx context.Context, id string) (models.BookingLead, error) {
	return r.store.Get(ctx, id)
}

// UpdateStatus sets the lifecycle status of a stored lead. An unknown id
// is a silent no-op.
func (r *Relay) UpdateStatus(ctx context.Context, id, status string) error {
	return r.store.SetStatus(ctx, id, status)
}

// Delete removes a stored lead. An unknown id is a silent no-op.
func (r *Relay) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

// TestIntegration runs a marked sample through the normal pipeline so an
// admin can verify the field mapping end to end. Like any other
// submission it lands in the local log, and a send failure surfaces there
// rather than here.
func (r *Relay) TestIntegration(ctx context.Context) error {
	sample := models.LeadData{
		Name:         "Integration Test",
		Email:        "test@example.com",
		Phone:        "+0000000000",
		TourInterest: "Test Tour",
		TravelDates:  "N/A",
		GroupSize:    "1",
		Message:      "Ignore: connectivity test submission",
	}
	_, err := r.Submit(ctx, sample)
	return err
}
