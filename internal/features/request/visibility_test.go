package request

import (
	"testing"

	common_models "prestova-one/internal/common/models"

	"github.com/stretchr/testify/assert"
)

func sampleRequest(status Status) *Request {
	return &Request{
		ID:           "1741597200000",
		Type:         TypeOvertime,
		RequesterID:  "u-staff",
		DepartmentID: "dept-ops",
		Status:       status,
	}
}

func TestVisibleTo(t *testing.T) {
	tests := []struct {
		name    string
		actor   common_models.Actor
		req     *Request
		visible bool
	}{
		{
			name:    "requester sees own request",
			actor:   common_models.Actor{ID: "u-staff", Role: common_models.RoleStaff},
			req:     sampleRequest(StatusPending),
			visible: true,
		},
		{
			name:    "staff cannot see someone else's request",
			actor:   common_models.Actor{ID: "u-other", Role: common_models.RoleStaff},
			req:     sampleRequest(StatusPending),
			visible: false,
		},
		{
			name:    "manager sees own department",
			actor:   common_models.Actor{ID: "u-mgr", Role: common_models.RoleManager, DepartmentID: "dept-ops"},
			req:     sampleRequest(StatusPending),
			visible: true,
		},
		{
			name:    "manager blind to other departments",
			actor:   common_models.Actor{ID: "u-mgr", Role: common_models.RoleManager, DepartmentID: "dept-fin"},
			req:     sampleRequest(StatusPending),
			visible: false,
		},
		{
			name:    "gm sees manager approved",
			actor:   common_models.Actor{ID: "u-gm", Role: common_models.RoleGeneralManager},
			req:     sampleRequest(StatusManagerApproved),
			visible: true,
		},
		{
			name:    "gm blind to pending",
			actor:   common_models.Actor{ID: "u-gm", Role: common_models.RoleGeneralManager},
			req:     sampleRequest(StatusPending),
			visible: false,
		},
		{
			name:    "hrd sees gm approved",
			actor:   common_models.Actor{ID: "u-hrd", Role: common_models.RoleHRD},
			req:     sampleRequest(StatusGMApproved),
			visible: true,
		},
		{
			name:    "finance sees gm approved",
			actor:   common_models.Actor{ID: "u-fin", Role: common_models.RoleFinance},
			req:     sampleRequest(StatusGMApproved),
			visible: true,
		},
		{
			name:    "hrd blind to pending",
			actor:   common_models.Actor{ID: "u-hrd", Role: common_models.RoleHRD},
			req:     sampleRequest(StatusPending),
			visible: false,
		},
		{
			name:    "admin sees everything",
			actor:   common_models.Actor{ID: "u-admin", Role: common_models.RoleAdmin},
			req:     sampleRequest(StatusRejected),
			visible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, VisibleTo(tt.req, tt.actor))
		})
	}
}

func TestVisibleFilter(t *testing.T) {
	admin := common_models.Actor{ID: "u-admin", Role: common_models.RoleAdmin}
	assert.Empty(t, VisibleFilter(admin))

	mgr := common_models.Actor{ID: "u-mgr", Role: common_models.RoleManager, DepartmentID: "dept-ops"}
	assert.Equal(t, "dept-ops", VisibleFilter(mgr)["department_id"])

	gm := common_models.Actor{ID: "u-gm", Role: common_models.RoleGeneralManager}
	assert.Equal(t, StatusManagerApproved, VisibleFilter(gm)["status"])

	hrd := common_models.Actor{ID: "u-hrd", Role: common_models.RoleHRD}
	assert.Equal(t, StatusGMApproved, VisibleFilter(hrd)["status"])

	staff := common_models.Actor{ID: "u-staff", Role: common_models.RoleStaff}
	assert.Equal(t, "u-staff", VisibleFilter(staff)["requester_id"])
}
