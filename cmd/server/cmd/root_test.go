package cmd

import (
	"testing"

	"github.com/placementiq/placement-api/pkg/logger"
)

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{"serve": false, "seed": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestServeCommand_PortFlag(t *testing.T) {
	f := serveCmd.Flags().Lookup("port")
	if f == nil {
		t.Fatal("serve is missing --port")
	}
	if f.DefValue != "" {
		t.Errorf("expected empty default so PORT applies, got %q", f.DefValue)
	}
}

func TestLoadConfig_InitialisesLogger(t *testing.T) {
	logger.Reset()
	defer logger.Reset()
	t.Setenv("JWT_SECRET_KEY", "s3cret")

	cfg, err := loadConfig(t.Context())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Fatalf("unexpected secret %q", cfg.Auth.JWTSecret)
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("logger not initialised: %v", r)
		}
	}()
	logger.Get().Debug().Msg("ready")
}
