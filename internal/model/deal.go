package model

// DealContext holds the free-text fields interpolated into the letter.
// Nothing here is validated.
type DealContext struct {
	Tenant    string `json:"tenant" yaml:"tenant"`
	Location  string `json:"location" yaml:"location"`
	Signature string `json:"signature" yaml:"signature"`
}

// DefaultDeal is the form's initial state.
func DefaultDeal() DealContext {
	return DealContext{
		Tenant:    "Acme Retail LLC",
		Location:  "123 Main Street, Orlando FL",
		Signature: "LOIDraft by Intenra",
	}
}
