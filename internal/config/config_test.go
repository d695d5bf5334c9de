package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jask/filetally/internal/selection"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("USER", "steve")
	t.Setenv("FILETALLY_CONFIG", "")
	for _, k := range []string{
		"FILETALLY_DISPLAY_PREPEND_USER_NAME",
		"FILETALLY_DISPLAY_UNIT",
		"FILETALLY_DISPLAY_CLASS",
		"FILETALLY_PICKER_DIR",
		"FILETALLY_PICKER_EXTENSIONS",
		"FILETALLY_UI_USER_NAME",
		"FILETALLY_PRINT",
	} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.PrependUserName {
		t.Error("prepend should default to false")
	}
	if cfg.Display.Unit != "kilobytes" || cfg.Display.Class != "file" {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.Picker.Dir != "." || cfg.Picker.ShowHidden || len(cfg.Picker.Extensions) != 0 {
		t.Errorf("picker = %+v", cfg.Picker)
	}
	if cfg.UI.UserName != "steve" {
		t.Errorf("user name = %q, want steve", cfg.UI.UserName)
	}
	if cfg.Print || len(cfg.Args) != 0 {
		t.Errorf("print=%v args=%v", cfg.Print, cfg.Args)
	}
	want := selection.DisplayConfig{Unit: selection.UnitKilobytes, Class: "file"}
	if cfg.Selection() != want {
		t.Errorf("selection = %+v, want %+v", cfg.Selection(), want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FILETALLY_DISPLAY_UNIT", "bytes")
	t.Setenv("FILETALLY_DISPLAY_PREPEND_USER_NAME", "true")
	t.Setenv("FILETALLY_DISPLAY_CLASS", "schematic")
	t.Setenv("FILETALLY_PICKER_EXTENSIONS", "zip,schematic")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sel := cfg.Selection()
	if sel.Unit != selection.UnitBytes || !sel.PrependUserName || sel.Class != "schematic" {
		t.Errorf("selection = %+v", sel)
	}
	if len(cfg.Picker.Extensions) != 2 || cfg.Picker.Extensions[0] != "zip" {
		t.Errorf("extensions = %v", cfg.Picker.Extensions)
	}
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FILETALLY_DISPLAY_UNIT", "bytes")
	t.Setenv("FILETALLY_UI_USER_NAME", "alex")

	cfg, err := Load([]string{"--print", "--prefix", "--unit", "kilobytes", "--name", "bob", "a.txt", "b.txt"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.Unit != "kilobytes" || !cfg.Display.PrependUserName || cfg.UI.UserName != "bob" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Print {
		t.Error("expected print mode")
	}
	if len(cfg.Args) != 2 || cfg.Args[1] != "b.txt" {
		t.Errorf("args = %v", cfg.Args)
	}
}

func TestLoadUnsetFlagsDoNotMaskEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FILETALLY_UI_USER_NAME", "alex")

	cfg, err := Load([]string{"--prefix"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.UserName != "alex" {
		t.Errorf("user name = %q, want alex", cfg.UI.UserName)
	}
}

func TestLoadRejectsUnknownUnit(t *testing.T) {
	isolate(t)
	t.Setenv("FILETALLY_DISPLAY_UNIT", "megabytes")

	_, err := Load(nil)
	if !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("err = %v, want ErrInvalidUnit", err)
	}
}

func TestLoadBadFlag(t *testing.T) {
	isolate(t)
	if _, err := Load([]string{"--nope"}); err == nil {
		t.Fatal("expected flag error")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "filetally")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[display]\nprepend_user_name = true\nunit = \"bytes\"\n\n[picker]\ndir = \"/srv/uploads\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Display.PrependUserName || cfg.Display.Unit != "bytes" || cfg.Picker.Dir != "/srv/uploads" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadMalformedConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[display\nunit = "), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FILETALLY_CONFIG", path)

	if _, err := Load(nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("FILETALLY_CONFIG", path)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Display.PrependUserName = true
	cfg.UI.UserName = "amy"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.Display.PrependUserName || got.UI.UserName != "amy" {
		t.Errorf("reloaded = %+v", got)
	}
}

func TestSavePrependUserNameWritesOnlyThatKey(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("FILETALLY_CONFIG", path)
	if err := os.WriteFile(path, []byte("[display]\nclass = \"schematic\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FILETALLY_PICKER_DIR", "/from/env")

	cfg, err := Load([]string{"--dir", "/tmp/once", "--name", "guest", "--unit", "bytes"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Picker.Dir != "/tmp/once" || cfg.UI.UserName != "guest" || cfg.Display.Unit != "bytes" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if err := SavePrependUserName(true); err != nil {
		t.Fatalf("SavePrependUserName: %v", err)
	}

	t.Setenv("FILETALLY_PICKER_DIR", "")
	got, err := Load(nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.Display.PrependUserName {
		t.Error("prefix setting not saved")
	}
	if got.Picker.Dir != "." || got.UI.UserName != "steve" || got.Display.Unit != "kilobytes" {
		t.Errorf("one-off overrides leaked into the file: %+v", got)
	}
	if got.Display.Class != "schematic" {
		t.Errorf("existing file key lost, class = %q", got.Display.Class)
	}
}

func TestNoHomeDirectory(t *testing.T) {
	isolate(t)
	t.Setenv("HOME", "")

	if _, err := Path(); err == nil {
		t.Fatal("Path should fail without a home directory")
	}
	if err := SavePrependUserName(true); err == nil {
		t.Fatal("save should fail without a home directory")
	}
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load without home: %v", err)
	}
	if cfg.Display.Unit != "kilobytes" {
		t.Errorf("cfg = %+v", cfg)
	}
}
