package v1

type KasiraClient struct {
	Transport *Transport
	Closings  *ClosingEndpoint
	Wizard    *WizardEndpoint
}

// NewKasiraClient initializes the API client for one location host
func NewKasiraClient(baseURL string, token string) *KasiraClient {
	t := NewTransport(baseURL, token)
	return &KasiraClient{
		Transport: t,
		Closings:  &ClosingEndpoint{transport: t},
		Wizard:    &WizardEndpoint{transport: t},
	}
}
