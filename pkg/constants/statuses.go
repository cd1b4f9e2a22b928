// Package constants provides centralized string constants used throughout the application.
// Status values are shared by the upgrade summary and the outdated report.
package constants

// Target status constants represent the state of one executable during a run.
const (
	// StatusCheckingVersion indicates the version query is running.
	StatusCheckingVersion = "CheckingVersion"

	// StatusListingOutdated indicates the outdated listing is running.
	StatusListingOutdated = "ListingOutdated"

	// StatusUpgrading indicates the upgrade command is running.
	StatusUpgrading = "Upgrading"

	// StatusDone indicates the upgrade command succeeded.
	StatusDone = "Done"

	// StatusUpToDate indicates there was nothing to upgrade.
	StatusUpToDate = "UpToDate"

	// StatusPlanned indicates the upgrade was skipped (dry-run mode).
	StatusPlanned = "Planned"

	// StatusFailed indicates one of the stages failed.
	StatusFailed = "Failed"
)

// Package status constants used in the outdated report.
const (
	// StatusOutdated indicates a newer version is available for the package.
	StatusOutdated = "Outdated"

	// StatusExcluded indicates the package is listed in the config exclude list.
	StatusExcluded = "Excluded"
)

// PlaceholderNA is shown when a column is missing from the listing.
const PlaceholderNA = "#N/A"

// Icon constants for status display.
const (
	// IconSuccess indicates a successful or positive state (green circle).
	IconSuccess = "🟢"

	// IconWarning indicates a warning or caution state (orange circle).
	IconWarning = "🟠"

	// IconError indicates an error or failed state (red X).
	IconError = "❌"

	// IconInfo indicates informational or neutral state (blue circle).
	IconInfo = "🔵"

	// IconPending indicates a pending or planned state (yellow circle).
	IconPending = "🟡"

	// IconIgnored indicates a package is excluded from processing (no entry).
	IconIgnored = "🚫"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)

// StatusIcon returns the icon for a target or package status.
//
// Parameters:
//   - status: One of the Status constants
//
// Returns:
//   - string: Matching icon; empty for in-progress and unknown statuses
func StatusIcon(status string) string {
	switch status {
	case StatusDone, StatusUpToDate:
		return IconSuccess
	case StatusPlanned:
		return IconPending
	case StatusFailed:
		return IconError
	case StatusOutdated:
		return IconWarning
	case StatusExcluded:
		return IconIgnored
	default:
		return ""
	}
}
