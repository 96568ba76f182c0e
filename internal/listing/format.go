package listing

import (
	"fmt"

	"jobboard-be/internal/entity"
)

// FormatLocation renders a job's location list for display and sorting.
// The first entry is the primary location; additional entries collapse
// into a "+N" suffix.
func FormatLocation(locations []entity.Location) string {
	if len(locations) == 0 {
		return "TBD"
	}
	primary := fmt.Sprintf("%s, %s", locations[0].City, locations[0].State)
	if len(locations) == 1 {
		return primary
	}
	return fmt.Sprintf("%s +%d", primary, len(locations)-1)
}

// FormatRemotePolicy renders the stored policy value as a display label.
// Unrecognized values pass through untouched.
func FormatRemotePolicy(policy string, daysPerWeek *int) string {
	switch policy {
	case entity.RemotePolicyRemote:
		return "Remote"
	case entity.RemotePolicyHybrid:
		if daysPerWeek != nil {
			return fmt.Sprintf("Hybrid (%dd/w)", *daysPerWeek)
		}
		return "Hybrid"
	case entity.RemotePolicyInOffice:
		return "On-Site"
	default:
		return policy
	}
}
