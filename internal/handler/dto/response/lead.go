package response

import (
	"log/slog"
	"time"

	"lead-capture/internal/domain/lead"
	"lead-capture/internal/pkg/phone"
	"lead-capture/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type LeadResponse struct {
	ID               string `json:"req_id"`
	ClientName       string `json:"client_name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	PhoneE164        string `json:"phone_e164"`
	SubmittedAt      string `json:"request_date"`
	RequestTimeOfDay string `json:"req_time"`
	Status           string `json:"status"`
	StatusCategory   string `json:"status_category"`
	StatusTone       string `json:"status_tone"`
	Description      string `json:"description"`
}

type LeadListResponse struct {
	Requests []*LeadResponse `json:"requests"`
	Count    int             `json:"count"`
}

func FromLeadView(v *queries.LeadView) *LeadResponse {
	res := &LeadResponse{}
	// same-named string fields only; the rest is derived below
	if err := copier.Copy(res, v); err != nil {
		slog.Error("failed to map lead view", "req_id", v.RequestID.String(), "error", err)
	}

	res.ID = v.RequestID.String()
	res.SubmittedAt = v.RequestDate.UTC().Format(time.RFC3339Nano)
	decorate(res)
	return res
}

func FromLeadRecord(r *lead.Record) *LeadResponse {
	return FromLeadView(&queries.LeadView{
		RequestID:        r.RequestID,
		ClientName:       r.ClientName,
		Email:            r.Email,
		PhoneNumber:      r.PhoneNumber,
		RequestDate:      r.RequestDate,
		RequestTimeOfDay: r.RequestTimeOfDay,
		Status:           r.Status.String(),
		Description:      r.Description,
	})
}

func FromLeadList(views []*queries.LeadView) *LeadListResponse {
	items := make([]*LeadResponse, len(views))
	for i, v := range views {
		items[i] = FromLeadView(v)
	}
	return &LeadListResponse{Requests: items, Count: len(items)}
}

func decorate(res *LeadResponse) {
	category := lead.Classify(res.Status)
	res.StatusCategory = category.String()
	res.StatusTone = category.Tone()
	res.PhoneE164 = phone.E164(res.PhoneNumber)
}
