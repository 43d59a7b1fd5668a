package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed vocabulary of user roles in the system.
// Roles are not stored documents; the set never changes at runtime.
type Role string

const (
	RoleStaff          Role = "staff"
	RoleManager        Role = "manager"
	RoleGeneralManager Role = "general_manager"
	RoleHRD            Role = "hrd"
	RoleFinance        Role = "finance"
	RoleAdmin          Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RoleManager, RoleGeneralManager, RoleHRD, RoleFinance, RoleAdmin:
		return true
	}
	return false
}

// Actor identifies the user performing an action, resolved from auth claims.
type Actor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	DepartmentID string `json:"department_id"`
}

type AuditAction string

const (
	AuditActionCreate    AuditAction = "CREATE"
	AuditActionUpdate    AuditAction = "UPDATE"
	AuditActionDelete    AuditAction = "DELETE"
	AuditActionLogin     AuditAction = "LOGIN"
	AuditActionApproval  AuditAction = "APPROVAL"
	AuditActionSettings  AuditAction = "SETTINGS"
	AuditActionBroadcast AuditAction = "BROADCAST"
	AuditActionRecap     AuditAction = "RECAP"
)

type Change struct {
	Old interface{} `bson:"old" json:"old"`
	New interface{} `bson:"new" json:"new"`
}

type AuditLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action    AuditAction        `bson:"action" json:"action"`
	Module    string             `bson:"module" json:"module"`
	RecordID  string             `bson:"record_id" json:"record_id"`
	ActorID   string             `bson:"actor_id" json:"actor_id"`
	ActorName string             `bson:"actor_name,omitempty" json:"actor_name,omitempty"`
	Changes   map[string]Change  `bson:"changes,omitempty" json:"changes,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
