package dto

import (
	"fmt"
	"time"

	"admin-audit-log/internal/core/domain"
	"admin-audit-log/internal/core/ports"
)

// Paging bounds for GET /actions.
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// AppendActionRequest is the request body for recording an admin action.
// The actor comes from the bearer token, never from the body.
type AppendActionRequest struct {
	ActionType string         `json:"actionType"`
	TargetType string         `json:"targetType,omitempty"`
	TargetID   string         `json:"targetId,omitempty"`
	Details    domain.Details `json:"details,omitempty"`
}

// ToInput combines the request with the authenticated actor and the
// request provenance.
func (r AppendActionRequest) ToInput(actor ports.AdminClaims, ip, userAgent string) domain.ActionInput {
	return domain.ActionInput{
		AdminID:    actor.AdminID,
		AdminEmail: actor.Email,
		SessionID:  actor.SessionID,
		ActionType: r.ActionType,
		TargetType: r.TargetType,
		TargetID:   r.TargetID,
		Details:    r.Details,
		IP:         ip,
		UserAgent:  userAgent,
	}
}

// FilterQuery holds the filter parameters shared by list and export.
type FilterQuery struct {
	AdminEmail string `form:"adminEmail"`
	ActionType string `form:"actionType"`
	SessionID  string `form:"sessionId"`
	From       string `form:"from"`
	To         string `form:"to"`
}

// Filter converts the query to a domain filter. A date-only "to" covers
// the whole day.
func (q FilterQuery) Filter() (domain.ActionFilter, error) {
	f := domain.ActionFilter{
		AdminEmail: q.AdminEmail,
		ActionType: q.ActionType,
		SessionID:  q.SessionID,
	}
	if q.From != "" {
		from, err := domain.ParseTimestamp(q.From)
		if err != nil {
			return f, fmt.Errorf("invalid from: %q", q.From)
		}
		f.From = &from
	}
	if q.To != "" {
		to, err := domain.ParseTimestamp(q.To)
		if err != nil {
			return f, fmt.Errorf("invalid to: %q", q.To)
		}
		if len(q.To) == len(time.DateOnly) {
			to = to.Add(24*time.Hour - time.Millisecond)
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return f, fmt.Errorf("from must not be after to")
	}
	return f, nil
}

// ListActionsQuery is the query string of GET /actions.
type ListActionsQuery struct {
	FilterQuery
	Limit  int `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int `form:"offset" binding:"min=0"`
}

// ActionIDParam binds the :id path parameter.
type ActionIDParam struct {
	ID string `uri:"id" binding:"required,safe_id"`
}

// ListActionsResponse is one page of records, newest first.
type ListActionsResponse struct {
	Items  []domain.ActionRecord `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// NewListActionsResponse pages records, which are already filtered and sorted.
func NewListActionsResponse(records []domain.ActionRecord, limit, offset int) ListActionsResponse {
	start := min(offset, len(records))
	end := min(start+limit, len(records))
	items := records[start:end]
	if items == nil {
		items = []domain.ActionRecord{}
	}
	return ListActionsResponse{
		Items:  items,
		Total:  len(records),
		Limit:  limit,
		Offset: offset,
	}
}

// ActionTypesResponse lists the distinct action types in the log.
type ActionTypesResponse struct {
	ActionTypes []string `json:"actionTypes"`
}
