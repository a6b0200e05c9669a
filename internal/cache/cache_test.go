package cache

import "testing"

func TestHashIsStableAndContentSensitive(t *testing.T) {
	a := Hash([]byte("let x = 1\n"))
	b := Hash([]byte("let x = 1\n"))
	c := Hash([]byte("let x = 2\n"))
	if a != b {
		t.Fatal("Hash must be deterministic for identical content")
	}
	if a == c {
		t.Fatal("Hash must differ for differing content")
	}
}

func TestDiskCachePutThenGetRoundTrips(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dc, err := OpenDiskCache("aoc-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	key := Hash([]byte("contract C:\n    let n: i64 = 0\n"))
	want := Summary{
		Schema:       schemaVersion,
		FunctionKeys: []string{"C__add"},
		Contracts: []ContractSummary{
			{Name: "C", Members: []MemberSummary{{Name: "n", Kind: "i64"}}, DefaultCtorMangle: "C____default_init__"},
		},
	}
	if err := dc.Put(key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := dc.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v, %v", got, ok, err)
	}
	if len(got.FunctionKeys) != 1 || got.FunctionKeys[0] != "C__add" {
		t.Fatalf("FunctionKeys = %v", got.FunctionKeys)
	}
	if len(got.Contracts) != 1 || got.Contracts[0].Name != "C" {
		t.Fatalf("Contracts = %v", got.Contracts)
	}
}

func TestDiskCacheGetMissReturnsNotOk(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dc, err := OpenDiskCache("aoc-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	_, ok, err := dc.Get(Digest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a miss for an unwritten key")
	}
}
