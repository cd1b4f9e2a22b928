package display

// Progress messages printed while upgrading one target.
const (
	MsgHeaderFmt   = "--- Upgrading all packages for '%s' ---"
	MsgCountFmt    = "%d package(s) need to be upgraded"
	MsgPackagesFmt = "They are: %s"
	MsgUpgrading   = "Upgrading all packages..."
	MsgSuccess     = "Upgrade successful."
	MsgDryRun      = "Dry run: skipping upgrade."
)

// Messages for the outdated report.
const (
	MsgReportHeaderFmt = "--- Outdated packages for '%s' ---"
	MsgNothingOutdated = "All packages are up to date."
	MsgHintFmt         = "%s %s"
)
