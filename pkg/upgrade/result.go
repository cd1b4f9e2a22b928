package upgrade

import (
	"github.com/ajxudir/pipupgrade/pkg/constants"
	"github.com/ajxudir/pipupgrade/pkg/pip"
)

// State is the stage a target reached during a run.
type State string

// Target states. Failed is absorbing; Done, UpToDate and Planned are terminal.
const (
	StateCheckingVersion State = constants.StatusCheckingVersion
	StateListingOutdated State = constants.StatusListingOutdated
	StateUpgrading       State = constants.StatusUpgrading
	StateDone            State = constants.StatusDone
	StateUpToDate        State = constants.StatusUpToDate
	StatePlanned         State = constants.StatusPlanned
	StateFailed          State = constants.StatusFailed
)

// Result is the outcome of processing one target.
//
// Fields:
//   - Target: Executable reference as given
//   - State: Final state
//   - FailedAt: State in which the failure occurred; empty unless State is StateFailed
//   - Version: Version reported by the executable, if the check got that far
//   - Packages: Outdated package names passed to the upgrade, in listing order
//   - Excluded: Outdated package names dropped by the config exclude list
//   - Err: The upgrade error for failed targets
type Result struct {
	Target   string
	State    State
	FailedAt State
	Version  pip.Version
	Packages []string
	Excluded []string
	Err      error
}

// fail moves the result into StateFailed, remembering where it stopped.
func (r *Result) fail(err error) {
	r.FailedAt = r.State
	r.State = StateFailed
	r.Err = err
}

// Summary collects the results of one batch run in processing order.
type Summary struct {
	Results []Result
}

// Count returns how many results ended in state.
func (s Summary) Count(state State) int {
	n := 0
	for _, r := range s.Results {
		if r.State == state {
			n++
		}
	}
	return n
}

// Failed returns the results that ended in StateFailed.
func (s Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.State == StateFailed {
			failed = append(failed, r)
		}
	}
	return failed
}

// HasFailures reports whether any target failed.
func (s Summary) HasFailures() bool {
	return s.Count(StateFailed) > 0
}
