package forms

// BypassToken is the sentinel token used when no CAPTCHA widget is
// configured. The backend recognizes it only in deployments that also have
// no captcha secret configured.
const BypassToken = "bypass"

// Widget notices shown inline under the challenge.
const (
	noticeUnverified = "You must verify CAPTCHA before submitting."
	noticeError      = "CAPTCHA error, please refresh"
)

// Gate tracks the verification token issued by the challenge widget and
// blocks submission until one is present.
//
// Policy: an empty site key means no widget is available; the gate then
// starts verified with the bypass sentinel and never demands a token. A
// configured site key always requires a real token, for every form. The
// policy is deliberately uniform across the contact and comment forms.
type Gate struct {
	siteKey  string
	token    string
	mountKey int
	notice   string
}

// NewGate creates a gate for the given site key.
func NewGate(siteKey string) *Gate {
	g := &Gate{siteKey: siteKey}
	if !g.Required() {
		g.token = BypassToken
	}
	return g
}

// Required reports whether a real token must be obtained before submitting.
func (g *Gate) Required() bool {
	return g.siteKey != ""
}

// Verified reports whether a token is present.
func (g *Gate) Verified() bool {
	return g.token != ""
}

// Token returns the current token, or "" while unverified.
func (g *Gate) Token() string {
	return g.token
}

// MountKey identifies the current widget instance. Challenge widgets are
// single-use, so the key is bumped whenever a fresh instance is needed.
func (g *Gate) MountKey() int {
	return g.mountKey
}

// Notice returns the user-visible gate notice, or "".
func (g *Gate) Notice() string {
	return g.notice
}

// Verify records a token issued by the widget's verify callback.
func (g *Gate) Verify(token string) {
	if token == "" {
		return
	}
	g.token = token
	g.notice = ""
}

// Expire handles the widget's expiry callback: the token is invalidated and
// the user must verify again.
func (g *Gate) Expire() {
	if !g.Required() {
		return
	}
	g.token = ""
	g.notice = noticeUnverified
}

// Fail handles the widget's error callback. An empty msg uses the default
// widget-error notice.
func (g *Gate) Fail(msg string) {
	if msg == "" {
		msg = noticeError
	}
	if g.Required() {
		g.token = ""
	}
	g.notice = msg
}

// Reset prepares the gate for the next submission: the token is cleared
// (or restored to the sentinel when no widget is configured) and the mount
// key is incremented by exactly one to force a fresh widget instance.
func (g *Gate) Reset() {
	g.mountKey++
	g.notice = ""
	if g.Required() {
		g.token = ""
	} else {
		g.token = BypassToken
	}
}
