// Package api exposes the simulated flows over HTTP for verichaind.
//
// Routes
//
//   - GET    /health
//   - POST   /sessions, GET /sessions
//   - GET    /sessions/{id}, DELETE /sessions/{id}
//   - POST   /sessions/{id}/start|reset|fail
//   - GET    /sessions/{id}/qr
//   - GET    /wallets, GET /wallet
//   - POST   /wallet/connect, POST /wallet/disconnect
//   - GET    /credentials
//   - GET    /certificates, GET /certificates/{id}
//
// Errors are JSON objects of the form {"error": "..."}; conflicts with the
// current state (already verifying, connect pending) are 409.
package api
