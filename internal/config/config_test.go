package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FOLIO_API_BASE", "")
	t.Setenv("FOLIO_CAPTCHA_SITE_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.CaptchaRequired() {
		t.Error("CaptchaRequired() = true with empty site key")
	}
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	t.Setenv("FOLIO_API_BASE", "https://api.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("APIBaseURL = %q, want trailing slash removed", cfg.APIBaseURL)
	}
}

func TestCaptchaRequired(t *testing.T) {
	t.Setenv("FOLIO_API_BASE", "")
	t.Setenv("FOLIO_CAPTCHA_SITE_KEY", "0x4AAAAAAA")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.CaptchaRequired() {
		t.Error("CaptchaRequired() = false with site key set")
	}
}
