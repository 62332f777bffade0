package domain

import "slices"

// Operation names a role-gated action.
type Operation string

const (
	OpAnimalCreate   Operation = "animal.create"
	OpAnimalListMine Operation = "animal.list_mine"

	OpReportTransition   Operation = "report.transition_status"
	OpReportAssign       Operation = "report.assign"
	OpReportListMine     Operation = "report.list_mine"
	OpReportListAssigned Operation = "report.list_assigned"

	OpEventCreate   Operation = "event.create"
	OpEventEnroll   Operation = "event.enroll"
	OpEventListMine Operation = "event.list_mine"

	OpDonationCreate       Operation = "donation.create"
	OpDonationList         Operation = "donation.list"
	OpDonationListMine     Operation = "donation.list_mine"
	OpDonationListReceived Operation = "donation.list_received"
	OpDonationTransition   Operation = "donation.transition_status"

	OpVolunteerRegister   Operation = "volunteer.register"
	OpVolunteerList       Operation = "volunteer.list"
	OpVolunteerView       Operation = "volunteer.view"
	OpVolunteerTransition Operation = "volunteer.transition_status"
	OpVolunteerGetMine    Operation = "volunteer.get_mine"

	OpUserProfile   Operation = "user.profile"
	OpUserList      Operation = "user.list"
	OpUserGet       Operation = "user.get"
	OpUserSetActive Operation = "user.set_active"
	OpUserSetRole   Operation = "user.set_role"
)

var (
	anyRole    = []Role{RoleUser, RoleOng, RoleAdmin}
	ongOrAdmin = []Role{RoleOng, RoleAdmin}
	adminOnly  = []Role{RoleAdmin}
)

// permissions is the single table of which roles may perform each operation.
// Operations missing from the table are denied for everyone.
var permissions = map[Operation][]Role{
	OpAnimalCreate:   anyRole,
	OpAnimalListMine: anyRole,

	OpReportTransition:   ongOrAdmin,
	OpReportAssign:       ongOrAdmin,
	OpReportListMine:     anyRole,
	OpReportListAssigned: ongOrAdmin,

	OpEventCreate:   ongOrAdmin,
	OpEventEnroll:   anyRole,
	OpEventListMine: anyRole,

	OpDonationCreate:       anyRole,
	OpDonationList:         ongOrAdmin,
	OpDonationListMine:     anyRole,
	OpDonationListReceived: ongOrAdmin,
	OpDonationTransition:   ongOrAdmin,

	OpVolunteerRegister:   anyRole,
	OpVolunteerList:       ongOrAdmin,
	OpVolunteerView:       ongOrAdmin,
	OpVolunteerTransition: ongOrAdmin,
	OpVolunteerGetMine:    anyRole,

	OpUserProfile:   anyRole,
	OpUserList:      adminOnly,
	OpUserGet:       adminOnly,
	OpUserSetActive: adminOnly,
	OpUserSetRole:   adminOnly,
}

// Allowed reports whether role may perform op.
func Allowed(op Operation, role Role) bool {
	return slices.Contains(permissions[op], role)
}
