// Package upgrade drives the per-target upgrade pipeline.
//
// For each executable reference the Upgrader runs, in order:
//
//	CheckingVersion -> ListingOutdated -> Upgrading -> Done
//
// Any stage may end in Failed. A target with nothing to upgrade ends in
// UpToDate and a dry run ends in Planned. Failures of one target are printed
// and the next target is processed; only cancellation stops a batch.
package upgrade
