package request

import (
	"time"

	common_models "prestova-one/internal/common/models"
)

// Status is the overall lifecycle state of a request. It is a denormalized
// cache of progress through the approval flow; only the approval engine
// writes it.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPending         Status = "pending"
	StatusManagerApproved Status = "manager_approved"
	StatusGMApproved      Status = "gm_approved"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type StepStatus string

const (
	StepPending  StepStatus = "pending"
	StepApproved StepStatus = "approved"
	StepRejected StepStatus = "rejected"
)

// Type discriminates the kind of form submitted.
type Type string

const (
	TypeOvertime          Type = "overtime"
	TypeLeave             Type = "leave"
	TypeSickLeave         Type = "sick_leave"
	TypeMissedPunch       Type = "missed_punch"
	TypeLabor             Type = "labor"
	TypePurchase          Type = "purchase"
	TypePayment           Type = "payment"
	TypeResign            Type = "resign"
	TypePermissionToLeave Type = "permission_to_leave"
)

func (t Type) Valid() bool {
	switch t {
	case TypeOvertime, TypeLeave, TypeSickLeave, TypeMissedPunch, TypeLabor,
		TypePurchase, TypePayment, TypeResign, TypePermissionToLeave:
		return true
	}
	return false
}

// ApprovalStep is one stage in a request's approval chain, bound to a role
// and, for manager steps, a department. Once a step leaves pending it is
// never reset.
type ApprovalStep struct {
	Role            common_models.Role `bson:"role" json:"role"`
	DepartmentID    string             `bson:"department_id,omitempty" json:"department_id,omitempty"`
	Status          StepStatus         `bson:"status" json:"status"`
	DecidedAt       *time.Time         `bson:"decided_at,omitempty" json:"decided_at,omitempty"`
	DecidedByUserID string             `bson:"decided_by_user_id,omitempty" json:"decided_by_user_id,omitempty"`
	DecidedByName   string             `bson:"decided_by_name,omitempty" json:"decided_by_name,omitempty"`
	Comment         string             `bson:"comment,omitempty" json:"comment,omitempty"`
}

// PurchaseItem is one line of a purchase request.
type PurchaseItem struct {
	Name     string  `bson:"name" json:"name" validate:"required"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	Price    float64 `bson:"price" json:"price" validate:"gte=0"`
}

// Detail carries the type-specific payload fields. Only the fields relevant
// to the request's Type are populated; the workflow engine never reads them.
type Detail struct {
	// overtime
	OvertimeDate  string  `bson:"overtime_date,omitempty" json:"overtime_date,omitempty"`
	OvertimeHours float64 `bson:"overtime_hours,omitempty" json:"overtime_hours,omitempty"`

	// leave / sick_leave
	StartDate string `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   string `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Reason    string `bson:"reason,omitempty" json:"reason,omitempty"`

	// sick_leave medical certificate, payment receipt
	AttachmentURL string `bson:"attachment_url,omitempty" json:"attachment_url,omitempty"`

	// missed_punch
	PunchDate string `bson:"punch_date,omitempty" json:"punch_date,omitempty"`
	PunchTime string `bson:"punch_time,omitempty" json:"punch_time,omitempty"`

	// labor
	Position  string `bson:"position,omitempty" json:"position,omitempty"`
	Headcount int    `bson:"headcount,omitempty" json:"headcount,omitempty"`

	// purchase
	Items []PurchaseItem `bson:"items,omitempty" json:"items,omitempty"`

	// payment
	Amount  float64 `bson:"amount,omitempty" json:"amount,omitempty"`
	Purpose string  `bson:"purpose,omitempty" json:"purpose,omitempty"`

	// resign
	EffectiveDate string `bson:"effective_date,omitempty" json:"effective_date,omitempty"`

	// permission_to_leave
	LeaveAt  string `bson:"leave_at,omitempty" json:"leave_at,omitempty"`
	ReturnAt string `bson:"return_at,omitempty" json:"return_at,omitempty"`
}

// Request is a submitted employee form requiring sequential approval.
type Request struct {
	ID            string         `bson:"_id" json:"id"`
	Type          Type           `bson:"type" json:"type"`
	RequesterID   string         `bson:"requester_id" json:"requester_id"`
	RequesterName string         `bson:"requester_name" json:"requester_name"`
	DepartmentID  string         `bson:"department_id" json:"department_id"`
	Status        Status         `bson:"status" json:"status"`
	ApprovalFlow  []ApprovalStep `bson:"approval_flow" json:"approval_flow"`
	Detail        Detail         `bson:"detail" json:"detail"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updated_at"`
}
