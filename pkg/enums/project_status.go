package enums

// ProjectStatus is an open string vocabulary rather than a closed enum: the
// source data uses different subsets per persona (Tender Open only appears in
// contractor and supplier flows). Filtering matches the literal value, so
// unknown statuses pass through untouched.
type ProjectStatus = string

const (
	StatusPlanning             ProjectStatus = "Planning"
	StatusUnderConstruction    ProjectStatus = "Under Construction"
	StatusNearingCompletion    ProjectStatus = "Nearing Completion"
	StatusCompletedOperational ProjectStatus = "Completed/Operational"
	StatusTenderOpen           ProjectStatus = "Tender Open"
	StatusInProgress           ProjectStatus = "In Progress"
	StatusOnHold               ProjectStatus = "On Hold"
)

// KnownStatuses lists the canonical status vocabulary for filter dropdowns.
func KnownStatuses() []ProjectStatus {
	return []ProjectStatus{
		StatusPlanning,
		StatusUnderConstruction,
		StatusNearingCompletion,
		StatusCompletedOperational,
		StatusTenderOpen,
		StatusInProgress,
		StatusOnHold,
	}
}
