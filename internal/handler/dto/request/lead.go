package request

import (
	"lead-capture/internal/usecase/commands"
)

// SubmitLeadRequest mirrors the public contact form. Presence of name, phone
// and message is checked by the domain so that a bad phone is always
// reported first; binding only caps lengths.
type SubmitLeadRequest struct {
	Name    string `json:"name" binding:"max=200"`
	Email   string `json:"email" binding:"omitempty,max=320"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"max=5000"`
}

func (r *SubmitLeadRequest) ToCommand() commands.SubmitLeadRequest {
	return commands.SubmitLeadRequest{
		ClientName:  r.Name,
		Email:       r.Email,
		PhoneNumber: r.Phone,
		Description: r.Message,
	}
}

type ListLeadsQuery struct {
	Today bool `form:"today"`
}
