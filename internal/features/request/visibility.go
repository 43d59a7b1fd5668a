package request

import (
	common_models "prestova-one/internal/common/models"

	"go.mongodb.org/mongo-driver/bson"
)

// VisibleFilter builds the Mongo filter for the requests a role may list.
// Admin sees everything; manager sees their department; general manager and
// the final approvers see the statuses waiting on them; everyone else sees
// only their own submissions. Kept in lockstep with VisibleTo below.
func VisibleFilter(actor common_models.Actor) bson.M {
	switch actor.Role {
	case common_models.RoleAdmin:
		return bson.M{}
	case common_models.RoleManager:
		return bson.M{"department_id": actor.DepartmentID}
	case common_models.RoleGeneralManager:
		return bson.M{"status": StatusManagerApproved}
	case common_models.RoleHRD, common_models.RoleFinance:
		return bson.M{"status": StatusGMApproved}
	default:
		return bson.M{"requester_id": actor.ID}
	}
}

// VisibleTo is the in-memory equivalent of VisibleFilter.
func VisibleTo(req *Request, actor common_models.Actor) bool {
	switch actor.Role {
	case common_models.RoleAdmin:
		return true
	case common_models.RoleManager:
		return req.DepartmentID == actor.DepartmentID
	case common_models.RoleGeneralManager:
		return req.Status == StatusManagerApproved
	case common_models.RoleHRD, common_models.RoleFinance:
		return req.Status == StatusGMApproved
	default:
		return req.RequesterID == actor.ID
	}
}
