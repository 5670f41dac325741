package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"verichain/internal/domain"
	"verichain/internal/logging"
)

// QRSettings configures payloads served by /sessions/{id}/qr.
type QRSettings struct {
	Type     string
	Endpoint string
}

// Server holds the services behind the HTTP handlers.
type Server struct {
	verification domain.VerificationService
	wallet       domain.WalletService
	certificates domain.CertificateService
	qr           QRSettings
	now          func() time.Time
	log          *slog.Logger
}

// NewServer returns a Server. now defaults to time.Now.
func NewServer(
	verification domain.VerificationService,
	wallet domain.WalletService,
	certificates domain.CertificateService,
	qr QRSettings,
	now func() time.Time,
	logger *slog.Logger,
) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{
		verification: verification,
		wallet:       wallet,
		certificates: certificates,
		qr:           qr,
		now:          now,
		log:          logging.NewComponentLogger(logger, "api"),
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	r.HandleFunc("/sessions", s.createSession).Methods(http.MethodPost)
	r.HandleFunc("/sessions", s.listSessions).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}", s.getSession).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}", s.deleteSession).Methods(http.MethodDelete)
	r.HandleFunc("/sessions/{id}/start", s.startSession).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/reset", s.resetSession).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/fail", s.failSession).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/qr", s.sessionQR).Methods(http.MethodGet)

	r.HandleFunc("/wallets", s.listWallets).Methods(http.MethodGet)
	r.HandleFunc("/wallet", s.walletState).Methods(http.MethodGet)
	r.HandleFunc("/wallet/connect", s.connectWallet).Methods(http.MethodPost)
	r.HandleFunc("/wallet/disconnect", s.disconnectWallet).Methods(http.MethodPost)

	r.HandleFunc("/credentials", s.listCredentials).Methods(http.MethodGet)
	r.HandleFunc("/certificates", s.listCertificates).Methods(http.MethodGet)
	r.HandleFunc("/certificates/{id}", s.getCertificate).Methods(http.MethodGet)

	r.Use(s.logRequests)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}
