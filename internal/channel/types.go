package channel

// Info describes one channel in the picker.
type Info struct {
	ID        string
	Name      string
	IsPrivate bool
	Selected  bool
}

// --- UseCase Inputs ---

type ConfigureInput struct {
	ContextID        string
	SelectedChannels []string
}

type ListInput struct {
	ContextID string
}

// --- UseCase Outputs ---

type ConfigureOutput struct {
	ContextID string
	Selected  []string
}

type ListOutput struct {
	Channels []Info
	Degraded bool // true when the provider list could not be fetched
}
