package commands

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"verichain/internal/api"
	"verichain/internal/app"
	"verichain/internal/config"
)

const testPass = "Sup3r-Secret-Key"

const fastConfig = `
log_level = "error"

[verification]
tick_interval_ms = 10
step = 10

[wallet]
connect_delay_ms = 5
`

type cli struct {
	t    *testing.T
	home string
	cfg  string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("VERICHAIN_HOME", "")
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfg, []byte(fastConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return &cli{t: t, home: filepath.Join(dir, "home"), cfg: cfg}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--home", c.home, "--config", c.cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	if err != nil {
		c.t.Fatalf("verichain %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

var certRe = regexp.MustCompile(`Certificate: (VER-[0-9A-Z]{8})`)

func TestInitVerifyAndCheckCertificate(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("init", "-p", testPass)
	if !strings.Contains(out, "Fingerprint: ") {
		t.Fatalf("init output = %q", out)
	}
	fp := strings.TrimSpace(strings.SplitN(out, "Fingerprint: ", 2)[1])
	if got := c.mustRun("fingerprint", "-p", testPass); !strings.Contains(got, fp) {
		t.Fatalf("fingerprint = %q, want %q", got, fp)
	}

	out = c.mustRun("verify", "-p", testPass)
	if !strings.Contains(out, "100%") || !strings.Contains(out, "Verification complete") {
		t.Fatalf("verify output = %q", out)
	}
	m := certRe.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("no certificate in %q", out)
	}

	if out := c.mustRun("certificates", "list"); !strings.Contains(out, m[1]) {
		t.Fatalf("list = %q", out)
	}
	if out := c.mustRun("certificates", "show", m[1]); !strings.Contains(out, fp) {
		t.Fatalf("show = %q", out)
	}
	if out := c.mustRun("certificates", "verify", m[1], "-p", testPass); !strings.Contains(out, "is valid") {
		t.Fatalf("verify cert = %q", out)
	}
}

func TestVerifyFailAt(t *testing.T) {
	c := newCLI(t)
	out, err := c.run("verify", "--fail-at", "30")
	if err == nil || !strings.Contains(err.Error(), "fault injected at 30%") {
		t.Fatalf("err = %v\n%s", err, out)
	}
	if strings.Contains(out, "100%") {
		t.Fatalf("progressed past failure: %q", out)
	}
}

func TestVerifyFailAtRange(t *testing.T) {
	c := newCLI(t)
	for _, v := range []string{"=-1", "=101"} {
		if _, err := c.run("verify", "--fail-at"+v); !errors.Is(err, errFailAtRange) {
			t.Fatalf("--fail-at%s err = %v", v, err)
		}
	}
	if !strings.Contains(errFailAtRange.Error(), "0 disables") {
		t.Fatalf("message = %q", errFailAtRange)
	}
}

func TestInitRejectsWeakPassphrase(t *testing.T) {
	c := newCLI(t)
	if _, err := c.run("init", "-p", "short"); err == nil {
		t.Fatal("weak passphrase accepted")
	}
	if _, err := c.run("init"); err == nil {
		t.Fatal("missing passphrase accepted")
	}
}

func TestWalletsAndLocalConnect(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("wallets")
	for _, name := range []string{"MetaMask", "WalletConnect", "Coinbase Wallet", "Rainbow"} {
		if !strings.Contains(out, name) {
			t.Fatalf("wallets missing %q:\n%s", name, out)
		}
	}

	out = c.mustRun("wallet", "connect", "metamask")
	if !strings.Contains(out, "0x742d...a72B") || !strings.Contains(out, "2.547 AVAX") {
		t.Fatalf("connect output = %q", out)
	}
	if _, err := c.run("wallet", "connect", "phantom"); err == nil {
		t.Fatal("unknown wallet accepted")
	}
	if _, err := c.run("wallet", "status"); err == nil {
		t.Fatal("status without --server should fail")
	}
}

func TestQRAndCredentials(t *testing.T) {
	c := newCLI(t)
	payload := strings.TrimSpace(c.mustRun("qr"))
	if !strings.Contains(payload, `"session":"session_`) {
		t.Fatalf("qr = %q", payload)
	}
	if out := c.mustRun("qr", "--parse", payload); !strings.Contains(out, "verichain_verification") {
		t.Fatalf("parse = %q", out)
	}
	if _, err := c.run("qr", "--parse", "{}"); err == nil {
		t.Fatal("empty payload accepted")
	}

	out := c.mustRun("credentials", "--type", "education")
	if !strings.Contains(out, "Education Degree") || strings.Contains(out, "Identity Passport") {
		t.Fatalf("credentials = %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(t.TempDir(), "verichain.toml")
	c.cfg = path
	c.mustRun("config", "init")
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("Load sample: exists=%v err=%v", exists, err)
	}
	if _, err := c.run("config", "init"); err == nil {
		t.Fatal("overwrote without --force")
	}
	c.mustRun("config", "init", "--force")
}

func TestAgainstDaemon(t *testing.T) {
	c := newCLI(t)

	cfg, _, _, err := config.Load(c.cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.HomeDir = t.TempDir()
	w, err := app.NewWire(app.Config{Settings: cfg})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()
	srv := api.NewServer(w.Verification, w.Wallet, w.Certificates,
		api.QRSettings{Type: cfg.QR.Type, Endpoint: cfg.QR.Endpoint}, nil, nil)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	out := c.mustRun("verify", "--server", ts.URL)
	if certRe.FindStringSubmatch(out) == nil {
		t.Fatalf("verify output = %q", out)
	}
	if len(w.Verification.List()) != 0 {
		t.Fatal("session not cleaned up without --keep")
	}

	c.mustRun("wallet", "connect", "rainbow", "--server", ts.URL)
	if out := c.mustRun("wallet", "status", "--server", ts.URL); !strings.Contains(out, "rainbow") {
		t.Fatalf("status = %q", out)
	}
	if out := c.mustRun("wallet", "disconnect", "--server", ts.URL); !strings.Contains(out, "Not connected") {
		t.Fatalf("disconnect = %q", out)
	}
}
