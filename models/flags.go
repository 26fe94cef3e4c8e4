package models

// Feature flag names as the backend reports them.
const (
	FlagGlobalService  = "global_service"
	FlagMenuManagement = "menu_management"
	FlagSalesStats     = "sales_stats"
)

// SystemFlags is the plan-gate map returned by /api/system-status:
// feature name -> 0|1. A feature is locked only when its key is present
// and explicitly 0; an absent key leaves the feature open.
type SystemFlags map[string]int

func (f SystemFlags) enabled(name string) bool {
	v, ok := f[name]
	return !ok || v != 0
}

// GlobalService reports whether order intake is running at all.
func (f SystemFlags) GlobalService() bool {
	return f.enabled(FlagGlobalService)
}

// MenuManagement reports whether the menu admin tab is in the plan.
func (f SystemFlags) MenuManagement() bool {
	return f.enabled(FlagMenuManagement)
}

// SalesStats reports whether the stats admin tab is in the plan.
func (f SystemFlags) SalesStats() bool {
	return f.enabled(FlagSalesStats)
}
