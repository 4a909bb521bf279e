// Recency cache lifecycle tests against the locked on-disk store.
package integration

import (
	"fmt"
	"os"
	"testing"

	"github.com/liquihost/liquihost/internal/cachestore"
)

const connID = "/work/dev.liquibase.properties"

func TestRecordAndReadChangelogsOnDisk(t *testing.T) {
	store := setupLockedStore(t)

	for _, path := range []string{"a.xml", "b.xml", "c.xml"} {
		if err := store.RecordChangelogUse(connID, path); err != nil {
			t.Fatalf("RecordChangelogUse(%q): %v", path, err)
		}
	}

	got := store.ReadChangelogs(connID)
	want := []string{"c.xml", "b.xml", "a.xml"}
	if len(got) != len(want) {
		t.Fatalf("changelogs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("changelogs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEvictionSurvivesReopen(t *testing.T) {
	store := setupLockedStore(t)

	for i := 1; i <= cachestore.MaxChangelogs+1; i++ {
		if err := store.RecordChangelogUse(connID, fmt.Sprintf("log-%d.xml", i)); err != nil {
			t.Fatalf("RecordChangelogUse: %v", err)
		}
	}

	// A second store over the same file sees the evicted state.
	reopened := cachestore.NewLockedStore(store.Path(), &cachestore.SystemClock{})
	got := reopened.ReadChangelogs(connID)
	if len(got) != cachestore.MaxChangelogs {
		t.Fatalf("changelogs = %v, want %d entries", got, cachestore.MaxChangelogs)
	}
	for _, path := range got {
		if path == "log-1.xml" {
			t.Error("log-1.xml should have been evicted")
		}
	}
}

func TestContextsRoundTripOnDisk(t *testing.T) {
	store := setupLockedStore(t)

	if err := store.ReplaceContexts(connID, []string{"prod", "dev"}); err != nil {
		t.Fatalf("ReplaceContexts: %v", err)
	}

	got := store.ReadContexts(connID)
	if len(got) != 2 || got[0] != "dev" || got[1] != "prod" {
		t.Errorf("contexts = %v, want [dev prod]", got)
	}
}

func TestClearRemovesBackingFile(t *testing.T) {
	store := setupLockedStore(t)

	if err := store.RecordChangelogUse(connID, "a.xml"); err != nil {
		t.Fatalf("RecordChangelogUse: %v", err)
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("expected backing file at %s: %v", store.Path(), err)
	}

	if err := store.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Errorf("backing file should be gone, stat err = %v", err)
	}
}
