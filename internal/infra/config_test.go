package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("app env = %q, want development", cfg.AppEnv)
	}
	if cfg.DefaultLocale != "en" {
		t.Fatalf("locale = %q, want en", cfg.DefaultLocale)
	}
	if cfg.GeminiImageModel != "gemini-2.5-flash-image" {
		t.Fatalf("image model = %q", cfg.GeminiImageModel)
	}
	if !cfg.UseImagesAPI {
		t.Fatalf("images API must default to enabled")
	}
	if cfg.RateLimitPerMinute != 10 {
		t.Fatalf("rate limit = %d, want 10", cfg.RateLimitPerMinute)
	}
	if cfg.HTTPWriteTimeout != 180*time.Second {
		t.Fatalf("write timeout = %v, want 180s", cfg.HTTPWriteTimeout)
	}
}

func TestLoadConfigRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig must fail without SESSION_SECRET")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "3")
	t.Setenv("USE_IMAGES_API", "false")
	t.Setenv("DEFAULT_LOCALE", "id")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Port)
	}
	if cfg.RateLimitPerMinute != 3 {
		t.Fatalf("rate limit = %d, want 3", cfg.RateLimitPerMinute)
	}
	if cfg.UseImagesAPI {
		t.Fatalf("images API must be disabled")
	}
	if cfg.DefaultLocale != "id" {
		t.Fatalf("locale = %q, want id", cfg.DefaultLocale)
	}
}

func TestActiveModel(t *testing.T) {
	cfg := &Config{
		GeminiModel:      "gemini-1.5-pro-latest",
		GeminiImageModel: "gemini-2.5-flash-image",
		UseImagesAPI:     true,
	}
	if got := cfg.ActiveModel(); got != "gemini-2.5-flash-image" {
		t.Fatalf("model = %q, want the image model", got)
	}

	cfg.UseImagesAPI = false
	if got := cfg.ActiveModel(); got != "gemini-1.5-pro-latest" {
		t.Fatalf("model = %q, want the text model when images API is off", got)
	}

	cfg.UseImagesAPI = true
	cfg.GeminiImageModel = ""
	if got := cfg.ActiveModel(); got != "gemini-1.5-pro-latest" {
		t.Fatalf("model = %q, want the fallback without an image model", got)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT_SECONDS", "not-a-number")
	if got := getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30); got != 30 {
		t.Fatalf("got %d, want the fallback", got)
	}
}
