package types

// Credential is a static entry in the credential vault.
type Credential struct {
	Title       string `json:"title"`
	Status      string `json:"status"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
}
