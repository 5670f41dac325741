package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"verichain/internal/credentials"
	"verichain/internal/domain"
	"verichain/internal/logging"
	"verichain/internal/qr"
	"verichain/internal/services/certificate"
	"verichain/internal/services/verification"
	"verichain/internal/services/wallet"
)

// ConnectRequest is the body of POST /wallet/connect.
type ConnectRequest struct {
	WalletID domain.WalletID `json:"wallet_id"`
}

// FailRequest is the optional body of POST /sessions/{id}/fail.
type FailRequest struct {
	Reason string `json:"reason"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusCreated, s.verification.Create())
}

func (s *Server) listSessions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.verification.List())
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.verification.Get(sessionID(r))
	s.respond(w, snap, err)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.verification.Delete(sessionID(r)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.verification.Start(sessionID(r))
	s.respond(w, snap, err)
}

func (s *Server) resetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.verification.Reset(sessionID(r))
	s.respond(w, snap, err)
}

func (s *Server) failSession(w http.ResponseWriter, r *http.Request) {
	var req FailRequest
	if err := decodeOptional(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	snap, err := s.verification.Fail(sessionID(r), req.Reason)
	s.respond(w, snap, err)
}

func (s *Server) sessionQR(w http.ResponseWriter, r *http.Request) {
	if _, err := s.verification.Get(sessionID(r)); err != nil {
		s.writeError(w, err)
		return
	}
	payload, err := qr.New(s.qr.Type, s.qr.Endpoint, s.now())
	s.respond(w, payload, err)
}

func (s *Server) listWallets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.wallet.Providers())
}

func (s *Server) walletState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.wallet.State())
}

func (s *Server) connectWallet(w http.ResponseWriter, r *http.Request) {
	var req ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	conn, err := s.wallet.Connect(req.WalletID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, conn)
}

func (s *Server) disconnectWallet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.wallet.Disconnect())
}

func (s *Server) listCredentials(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, credentials.All())
}

func (s *Server) listCertificates(w http.ResponseWriter, _ *http.Request) {
	certs, err := s.certificates.List()
	s.respond(w, certs, err)
}

func (s *Server) getCertificate(w http.ResponseWriter, r *http.Request) {
	cert, err := s.certificates.Get(domain.CertificateID(mux.Vars(r)["id"]))
	s.respond(w, cert, err)
}

func sessionID(r *http.Request) domain.SessionID {
	return domain.SessionID(mux.Vars(r)["id"])
}

// decodeOptional decodes a JSON body, treating an empty body as zero value.
func decodeOptional(r *http.Request, out any) error {
	err := json.NewDecoder(r.Body).Decode(out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Server) respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", logging.Error(err))
	}
	writeJSON(w, code, ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, verification.ErrSessionNotFound),
		errors.Is(err, certificate.ErrCertificateNotFound):
		return http.StatusNotFound
	case errors.Is(err, verification.ErrInProgress),
		errors.Is(err, verification.ErrNotVerifying),
		errors.Is(err, wallet.ErrConnectPending),
		errors.Is(err, wallet.ErrAlreadyConnected):
		return http.StatusConflict
	case errors.Is(err, wallet.ErrUnknownWallet):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
