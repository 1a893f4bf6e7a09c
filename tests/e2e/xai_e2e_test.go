package e2e

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/victorarias/modelweave/providers/xai"
)

func init() {
	dir, _ := os.Getwd()
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}

// TestXAIEndpointReachable checks the configured key against the live
// service. Gated: requires MODELWEAVE_E2E=1 and XAI_API_KEY.
func TestXAIEndpointReachable(t *testing.T) {
	if os.Getenv("MODELWEAVE_E2E") != "1" {
		t.Skip("set MODELWEAVE_E2E=1 to run")
	}

	adapter := xai.NewFromEnv()
	if adapter.AuthHeaders()["Authorization"] == "Bearer " {
		t.Skip("XAI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, adapter.BaseURL()+"/models", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for key, value := range adapter.AuthHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
