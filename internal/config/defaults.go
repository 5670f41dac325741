package config

const (
	defaultHomeDir          = "~/.verichain"
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
	defaultTickIntervalMS   = 200
	defaultProgressStep     = 10
	defaultConnectDelayMS   = 1500
	defaultQRType           = "verichain_verification"
	defaultQREndpoint       = "https://api.verichain.id/verify"
	defaultAPIBind          = "127.0.0.1:7600"
	defaultCertificateChain = "Avalanche"
	defaultCertificateFee   = "$0.02"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		HomeDir:   defaultHomeDir,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Verification: Verification{
			TickIntervalMS: defaultTickIntervalMS,
			Step:           defaultProgressStep,
		},
		Wallet: Wallet{
			ConnectDelayMS: defaultConnectDelayMS,
		},
		QR: QR{
			Type:     defaultQRType,
			Endpoint: defaultQREndpoint,
		},
		API: API{
			Bind: defaultAPIBind,
		},
		Certificate: Certificate{
			Chain:  defaultCertificateChain,
			GasFee: defaultCertificateFee,
		},
	}
}
