package configfile_test

import (
	"path/filepath"
	"testing"

	"github.com/AndrewDonelson/configfile"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func benchStore(b *testing.B, ext string) {
	b.Helper()
	path := filepath.Join(b.TempDir(), "bench."+ext)
	cfg := exampleConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := configfile.Store(cfg, path); err != nil {
			b.Fatal(err)
		}
	}
}

func benchLoad(b *testing.B, ext string) {
	b.Helper()
	path := filepath.Join(b.TempDir(), "bench."+ext)
	if err := configfile.Store(exampleConfig(), path); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := configfile.Load[Config](path); err != nil {
			b.Fatal(err)
		}
	}
}

// ── Store benchmarks ──────────────────────────────────────────────────────────

func BenchmarkStore_TOML(b *testing.B)    { benchStore(b, "toml") }
func BenchmarkStore_JSON(b *testing.B)    { benchStore(b, "json") }
func BenchmarkStore_YAML(b *testing.B)    { benchStore(b, "yaml") }
func BenchmarkStore_XML(b *testing.B)     { benchStore(b, "xml") }
func BenchmarkStore_MsgPack(b *testing.B) { benchStore(b, "msgpack") }

// ── Load benchmarks ───────────────────────────────────────────────────────────

func BenchmarkLoad_TOML(b *testing.B)    { benchLoad(b, "toml") }
func BenchmarkLoad_JSON(b *testing.B)    { benchLoad(b, "json") }
func BenchmarkLoad_YAML(b *testing.B)    { benchLoad(b, "yaml") }
func BenchmarkLoad_XML(b *testing.B)     { benchLoad(b, "xml") }
func BenchmarkLoad_MsgPack(b *testing.B) { benchLoad(b, "msgpack") }
