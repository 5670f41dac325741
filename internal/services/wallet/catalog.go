package wallet

import "verichain/internal/domain"

var providers = []domain.WalletProvider{
	{ID: "metamask", Name: "MetaMask", Description: "Most popular Ethereum wallet", Available: true, Users: "30M+"},
	{ID: "walletconnect", Name: "WalletConnect", Description: "Connect to any mobile wallet", Available: true, Users: "15M+"},
	{ID: "coinbase", Name: "Coinbase Wallet", Description: "Self-custody wallet by Coinbase", Available: true, Users: "10M+"},
	{ID: "rainbow", Name: "Rainbow", Description: "Ethereum wallet made for everyone", Available: true, Users: "5M+"},
}

// MockAccount is the account every connected wallet reports.
var MockAccount = domain.Account{
	Address:       "0x742d35Cc6543C09594e9dA4C4c88e82eFd64a72B",
	Balance:       "2.547",
	Symbol:        "AVAX",
	Network:       "Avalanche C-Chain",
	Credentials:   3,
	Verifications: 12,
}

// Providers returns the supported wallets in display order.
func Providers() []domain.WalletProvider {
	out := make([]domain.WalletProvider, len(providers))
	copy(out, providers)
	return out
}

// Lookup finds a provider by id.
func Lookup(id domain.WalletID) (domain.WalletProvider, bool) {
	for _, p := range providers {
		if p.ID == id {
			return p, true
		}
	}
	return domain.WalletProvider{}, false
}
