package ports

import "time"

type Recorder interface {
	Candidate(kind string)
	Probe(outcome string, elapsed time.Duration)
}
