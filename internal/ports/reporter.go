package ports

// Reporter receives observational events from a FileGenerator.
// None of its methods may influence generation.
type Reporter interface {
	Estimating(samples int)
	Estimated(e Estimate)
	Progress(s Stats)
	Finished(s Stats)
	Interrupted(s Stats)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Estimating(int)     {}
func (NopReporter) Estimated(Estimate) {}
func (NopReporter) Progress(Stats)     {}
func (NopReporter) Finished(Stats)     {}
func (NopReporter) Interrupted(Stats)  {}
