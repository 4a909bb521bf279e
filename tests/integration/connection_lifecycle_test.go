// Connection file lifecycle tests: create, reload, edit, reformat.
package integration

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/liquihost/liquihost/internal/props"
	"github.com/liquihost/liquihost/pkg/types"
)

func TestSaveAndReloadConnection(t *testing.T) {
	codec := setupCodec(t)
	fs, dir := setupWorkspace(t)
	path := filepath.Join(dir, "dev.liquibase.properties")

	cfg := types.NewConfiguration("dev")
	cfg.ChangelogFile = "db/changelog.xml"
	cfg.ClasspathEntries = []string{"lib/mariadb.jar", "db"}
	cfg.Primary.URL = "jdbc:mariadb://localhost:3306/app"
	cfg.Primary.Username = "app"
	cfg.Primary.Password = "s3cret"
	cfg.Primary.DatabaseTypeKey = "MariaDB"
	mustSave(t, codec, fs, path, cfg)

	got := mustLoad(t, codec, fs, path)
	if got.Status != types.StatusEdit {
		t.Errorf("reloaded status = %q, want %q", got.Status, types.StatusEdit)
	}
	if got.Name != "dev" {
		t.Errorf("reloaded name = %q, want dev", got.Name)
	}
	if got.ChangelogFile != cfg.ChangelogFile {
		t.Errorf("changelog = %q, want %q", got.ChangelogFile, cfg.ChangelogFile)
	}
	if got.Primary.DatabaseTypeKey != "MariaDB" {
		t.Errorf("database type = %q, want MariaDB", got.Primary.DatabaseTypeKey)
	}
	if got.Primary.Password != "s3cret" {
		t.Errorf("password = %q, want the stored value", got.Primary.Password)
	}
	if len(got.ClasspathEntries) != 2 {
		t.Fatalf("classpath entries = %v, want 2", got.ClasspathEntries)
	}
}

func TestReformatIsIdempotent(t *testing.T) {
	codec := setupCodec(t)
	fs, dir := setupWorkspace(t)
	path := filepath.Join(dir, "messy.liquibase.properties")

	messy := strings.Join([]string{
		"# hand-written file with odd ordering",
		"password = p",
		"url=jdbc:postgresql://db:5432/x",
		"username: u",
		"driver = org.postgresql.Driver",
		"changelogFile = master.xml",
		"logLevel = info",
		"",
	}, "\n")
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	f, err := fs.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := f.Write([]byte(messy)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	f.Close()

	once := codec.Serialize(mustLoad(t, codec, fs, path))
	mustSave(t, codec, fs, path, mustLoad(t, codec, fs, path))
	twice := codec.Serialize(mustLoad(t, codec, fs, path))

	if once != twice {
		t.Errorf("reformat not idempotent:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
	if !strings.Contains(once, "changelogFile = master.xml") {
		t.Errorf("canonical output missing changelog:\n%s", once)
	}
	if !strings.Contains(once, "logLevel = info") {
		t.Errorf("unknown key must survive reformatting:\n%s", once)
	}
}

func TestEditThroughMapperAndSave(t *testing.T) {
	codec := setupCodec(t)
	fs, dir := setupWorkspace(t)
	path := filepath.Join(dir, "edit.liquibase.properties")

	cfg := types.NewConfiguration("edit")
	cfg.Primary.URL = "jdbc:h2:mem:test"
	mustSave(t, codec, fs, path, cfg)

	loaded := mustLoad(t, codec, fs, path)
	mapper := props.Mapper{Catalog: codec.Catalog, ListSeparator: codec.ListSeparator}
	mapper.Apply(loaded, "referenceUrl", "jdbc:h2:mem:ref")
	mapper.Apply(loaded, "driver", "org.h2.Driver")
	mustSave(t, codec, fs, path, loaded)

	got := mustLoad(t, codec, fs, path)
	if !got.HasReference() {
		t.Fatal("expected a reference connection after edit")
	}
	if got.Reference.URL != "jdbc:h2:mem:ref" {
		t.Errorf("reference url = %q", got.Reference.URL)
	}
	if got.Primary.DatabaseTypeKey != "H2" {
		t.Errorf("database type = %q, want H2", got.Primary.DatabaseTypeKey)
	}
}

func TestPreviewMasksPasswordsOnDiskDoesNot(t *testing.T) {
	codec := setupCodec(t)
	fs, dir := setupWorkspace(t)
	path := filepath.Join(dir, "mask.liquibase.properties")

	cfg := types.NewConfiguration("mask")
	cfg.Primary.URL = "jdbc:mariadb://h/db"
	cfg.Primary.Password = "topsecret"
	mustSave(t, codec, fs, path, cfg)

	preview := codec.Preview(mustLoad(t, codec, fs, path))
	if strings.Contains(preview, "topsecret") {
		t.Error("preview leaked the password")
	}
	if !strings.Contains(preview, props.PasswordMask) {
		t.Error("preview missing the password mask")
	}

	onDisk := mustLoad(t, codec, fs, path)
	if onDisk.Primary.Password != "topsecret" {
		t.Errorf("on-disk password = %q, want the real value", onDisk.Primary.Password)
	}
}

func TestLoadMissingFileIsEmptyRecord(t *testing.T) {
	codec := setupCodec(t)
	fs, dir := setupWorkspace(t)

	cfg := mustLoad(t, codec, fs, filepath.Join(dir, "absent.liquibase.properties"))
	if cfg.Name != "absent" {
		t.Errorf("name = %q, want absent", cfg.Name)
	}
	if cfg.Primary.HasData() {
		t.Error("missing file must load as an empty record")
	}
}
