package constants

// timing labels for the pipeline phases
const (
	TimingFetch    = "fetch"
	TimingLoad     = "load"
	TimingValidate = "validate"
	TimingProject  = "project"
	TimingFilter   = "filter"
)
