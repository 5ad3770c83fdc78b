package leads

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"

	"planetholiday/models"
	"planetholiday/schema"
	"planetholiday/utils"
)

// POST /api/leads: the public contact form.
func SubmitLead(relay *Relay, hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		var data models.LeadData
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if verr := schema.ValidateLead(&data); verr != nil {
			utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
				"error":  "Validation failed",
				"fields": verr.Fields,
			})
			return
		}

		lead, err := relay.Submit(ctx, data)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record inquiry")
			return
		}

		go hub.BroadcastLead(lead)
		utils.RespondWithJSON(w, http.StatusCreated, lead)
	}
}

// GET /api/admin/leads?q=: the log is bounded at 100 entries, so the
// optional search filters in memory.
func ListLeads(relay *Relay) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		leads, err := relay.ListAll(ctx)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch leads")
			return
		}
		if q := r.URL.Query().Get("q"); q != "" {
			filtered := make([]models.BookingLead, 0, len(leads))
			for _, l := range leads {
				if utils.ContainsIgnoreCase(l.Name, q) ||
					utils.ContainsIgnoreCase(l.Email, q) ||
					utils.ContainsIgnoreCase(l.TourInterest, q) {
					filtered = append(filtered, l)
				}
			}
			leads = filtered
		}
		utils.RespondWithJSON(w, http.StatusOK, leads)
	}
}

// PATCH /api/admin/leads/:id/status: unknown ids succeed without effect.
func UpdateLeadStatus(relay *Relay) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !utils.ContainsString(models.LeadStatuses, body.Status) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
			return
		}

		if err := relay.UpdateStatus(ctx, ps.ByName("id"), body.Status); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update lead")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Lead updated"})
	}
}

// DELETE /api/admin/leads/:id: unknown ids succeed without effect.
func DeleteLead(relay *Relay) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := relay.Delete(ctx, ps.ByName("id")); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete lead")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Lead deleted"})
	}
}

// GET /api/admin/leads-config
func GetLeadFormConfig(relay *Relay) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, relay.Config())
	}
}

// PUT /api/admin/leads-config
func UpdateLeadFormConfig(relay *Relay) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var cfg models.LeadFormConfig
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if cfg.Endpoint == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Endpoint is required")
			return
		}

		if err := relay.UpdateConfig(ctx, cfg); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save config")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, relay.Config())
	}
}

// POST /api/admin/leads-config/reload: re-reads the stored config, for
// when it was edited out of band.
func ReloadLeadFormConfig(relay *Relay) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := relay.Reload(ctx); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reload config")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, relay.Config())
	}
}

// POST /api/admin/leads-test: runs a sample submission through the full
// pipeline; it shows up in the lead log like any other inquiry.
func TestLeadIntegration(relay *Relay) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		if err := relay.TestIntegration(ctx); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Test submission failed: "+err.Error())
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Test submission recorded"})
	}
}

// GET /api/admin/leads/:id/pdf
func ExportLeadPDF(relay *Relay) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lead, err := relay.Get(ctx, ps.ByName("id"))
		if err != nil {
			if err == mongo.ErrNoDocuments {
				utils.RespondWithError(w, http.StatusNotFound, "Lead not found")
				return
			}
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch lead")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="lead-`+lead.ID+`.pdf"`)
		if err := WriteLeadPDF(w, lead); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render PDF")
		}
	}
}
