package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"baseball-stats-service/internal/config"
	"baseball-stats-service/internal/providers"
)

const factoryFixtureCSV = "id,year,team,lg,g,ab,h,hr,rbi,sb,so,bb,hbp,sh,sf\n" +
	"aaronha01,1954,ML1,NL,122,468,131,13,69,2,39,28,3,6,4\n"

func TestSelectProviderFile(t *testing.T) {
	cfg := config.Config{Provider: providers.NameFile, Dataset: config.DatasetConfig{Path: "baseball.csv", Strict: true}}
	if _, ok := selectProvider(cfg, nil).(*providers.FileProvider); !ok {
		t.Fatalf("expected file provider")
	}

	cfg.Provider = ""
	if _, ok := selectProvider(cfg, nil).(*providers.FileProvider); !ok {
		t.Fatalf("expected file provider for empty name")
	}
}

func TestSelectProviderHTTP(t *testing.T) {
	cfg := config.Config{Provider: providers.NameHTTP, Dataset: config.DatasetConfig{URL: "http://example.com/baseball.csv"}}
	if _, ok := selectProvider(cfg, nil).(*providers.HTTPProvider); !ok {
		t.Fatalf("expected http provider")
	}
}

func TestSelectProviderUnknownFallsBackToFile(t *testing.T) {
	cfg := config.Config{Provider: "carrier-pigeon", Dataset: config.DatasetConfig{Path: "baseball.csv"}}
	if _, ok := selectProvider(cfg, nil).(*providers.FileProvider); !ok {
		t.Fatalf("expected fallback to file provider")
	}
}

func TestProviderFactoryBuildsWorkingProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseball.csv")
	if err := os.WriteFile(path, []byte(factoryFixtureCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := config.Config{Provider: providers.NameFile, Dataset: config.DatasetConfig{Path: path, Strict: true}}
	provider := newProviderFactory(nil, nil).build(cfg)

	ds, err := provider.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(ds.Lines) != 1 {
		t.Fatalf("unexpected dataset %+v", ds)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(""); got != providers.NameFile {
		t.Fatalf("expected file default, got %q", got)
	}
	if got := normalizeProviderName("HTTP"); got != "http" {
		t.Fatalf("expected lower-cased name, got %q", got)
	}
}
