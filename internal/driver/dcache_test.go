package driver

import (
	"os"
	"path/filepath"
	"testing"

	"glassful/internal/version"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey("fn main() {}")

	if _, ok, err := cache.Get(key); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}
	if err := cache.Put(key, &CachePayload{SourceHash: key, Output: "void main() {\n}\n"}); err != nil {
		t.Fatal(err)
	}
	got, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Output != "void main() {\n}\n" || got.Schema != diskCacheSchemaVersion {
		t.Errorf("payload = %+v", got)
	}

	entries, err := os.ReadDir(filepath.Join(cache.Dir(), "out"))
	if err != nil || len(entries) != 1 || entries[0].Name() != key.String()+".mp" {
		t.Errorf("unexpected cache layout: %v %v", entries, err)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := cache.Get(key); ok {
		t.Error("entry survived DropAll")
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("DropAll on empty cache: %v", err)
	}
}

func TestDiskCacheRejectsForeignEntry(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key, other := CacheKey("a"), CacheKey("b")
	if err := cache.Put(key, &CachePayload{SourceHash: other, Output: "x"}); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := cache.Get(key); ok || err != nil {
		t.Errorf("mismatched hash served: ok=%v err=%v", ok, err)
	}
}

func TestCacheKeyDependsOnVersion(t *testing.T) {
	prev := version.Version
	t.Cleanup(func() { version.Version = prev })

	a := CacheKey("fn main() {}")
	version.Version = prev + "+next"
	if CacheKey("fn main() {}") == a {
		t.Error("key ignores the tool version")
	}
}

func TestNilDiskCache(t *testing.T) {
	var c *DiskCache
	if err := c.Put(CacheKey("x"), &CachePayload{}); err != nil {
		t.Error(err)
	}
	if _, ok, err := c.Get(CacheKey("x")); ok || err != nil {
		t.Errorf("nil cache Get: ok=%v err=%v", ok, err)
	}
}
