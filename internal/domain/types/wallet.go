package types

// WalletProvider describes a wallet the user can connect.
type WalletProvider struct {
	ID          WalletID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Available   bool     `json:"available"`
	Users       string   `json:"users"`
}

// Account is the mock account shown once a wallet is connected.
type Account struct {
	Address       string `json:"address"`
	Balance       string `json:"balance"`
	Symbol        string `json:"symbol"`
	Network       string `json:"network"`
	Credentials   int    `json:"credentials"`
	Verifications int    `json:"verifications"`
}

// Connection is a point-in-time view of the wallet-connect flow.
type Connection struct {
	Selected  WalletID `json:"selected,omitempty"`
	Pending   bool     `json:"pending"`
	Connected bool     `json:"connected"`
	Account   *Account `json:"account,omitempty"`
}
