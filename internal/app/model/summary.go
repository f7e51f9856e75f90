package model

import "github.com/samber/lo"

// FileOutcome records how a single discovered file ended up.
type FileOutcome struct {
	File           MediaFile
	TranscriptPath string
	Err            error
}

// Failed reports whether the file ended in failure.
func (o FileOutcome) Failed() bool {
	return o.Err != nil
}

// RunSummary collects per-file outcomes for the end-of-run report. It lives
// only for the duration of one process.
type RunSummary struct {
	Outcomes []FileOutcome
}

func (s *RunSummary) Add(o FileOutcome) {
	s.Outcomes = append(s.Outcomes, o)
}

// Succeeded counts the files that produced a transcript.
func (s *RunSummary) Succeeded() int {
	return lo.CountBy(s.Outcomes, func(o FileOutcome) bool { return !o.Failed() })
}

// Failures returns the outcomes that ended in failure, in processing order.
func (s *RunSummary) Failures() []FileOutcome {
	return lo.Filter(s.Outcomes, func(o FileOutcome, _ int) bool { return o.Failed() })
}

// Total returns the number of files processed.
func (s *RunSummary) Total() int {
	return len(s.Outcomes)
}
