package models

// Bank is a configured payment-processing partner. Records are static
// configuration: they are loaded once at startup and never mutated.
type Bank struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
	// APIURL is carried per bank but the submit path does not consult it yet;
	// payments route through the single backend base URL with a bank_id field.
	APIURL string `json:"api_url"`
}
