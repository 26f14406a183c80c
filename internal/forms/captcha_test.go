package forms

import "testing"

func TestGateRequiresTokenWithSiteKey(t *testing.T) {
	g := NewGate("0x4AAAAAAA")
	if !g.Required() {
		t.Error("Required() = false with site key")
	}
	if g.Verified() {
		t.Error("Verified() = true before any token")
	}

	g.Verify("tok-123")
	if !g.Verified() {
		t.Error("Verified() = false after Verify")
	}
	if g.Token() != "tok-123" {
		t.Errorf("Token() = %q", g.Token())
	}
}

func TestGateBypassWithoutSiteKey(t *testing.T) {
	g := NewGate("")
	if g.Required() {
		t.Error("Required() = true without site key")
	}
	if !g.Verified() {
		t.Error("Verified() = false in bypass mode")
	}
	if g.Token() != BypassToken {
		t.Errorf("Token() = %q, want sentinel", g.Token())
	}

	// Reset must keep the gate open in bypass mode.
	g.Reset()
	if !g.Verified() || g.Token() != BypassToken {
		t.Error("Reset() closed a bypass gate")
	}
}

func TestGateExpire(t *testing.T) {
	g := NewGate("key")
	g.Verify("tok")
	g.Expire()
	if g.Verified() {
		t.Error("Verified() = true after expiry")
	}
	if g.Notice() == "" {
		t.Error("Notice() empty after expiry")
	}
}

func TestGateExpireIgnoredInBypassMode(t *testing.T) {
	g := NewGate("")
	g.Expire()
	if !g.Verified() {
		t.Error("Expire() should not close a bypass gate")
	}
}

func TestGateFail(t *testing.T) {
	g := NewGate("key")
	g.Verify("tok")
	g.Fail("")
	if g.Verified() {
		t.Error("Verified() = true after widget error")
	}
	if g.Notice() != "CAPTCHA error, please refresh" {
		t.Errorf("Notice() = %q", g.Notice())
	}
}

func TestGateResetIncrementsMountKeyByOne(t *testing.T) {
	g := NewGate("key")
	g.Verify("tok")

	before := g.MountKey()
	g.Reset()
	if g.MountKey() != before+1 {
		t.Errorf("MountKey() = %d, want %d", g.MountKey(), before+1)
	}
	if g.Verified() {
		t.Error("Verified() = true after Reset with site key")
	}

	g.Reset()
	if g.MountKey() != before+2 {
		t.Errorf("MountKey() = %d after second Reset, want %d", g.MountKey(), before+2)
	}
}

func TestGateVerifyClearsNotice(t *testing.T) {
	g := NewGate("key")
	g.Expire()
	g.Verify("tok-2")
	if g.Notice() != "" {
		t.Errorf("Notice() = %q after re-verify, want empty", g.Notice())
	}
}
