package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/smazurov/vibelight/internal/node"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConfigSampleStdout(t *testing.T) {
	out, _, err := run(t, CreateConfigCmd(), "sample")
	if err != nil {
		t.Fatal(err)
	}
	if out != string(node.Sample()) {
		t.Error("sample output differs from the embedded sample")
	}
}

func TestConfigSampleWriteAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etc", "node.toml")

	if _, _, err := run(t, CreateConfigCmd(), "sample", "-o", path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, want 600", perm)
	}

	out, _, err := run(t, CreateConfigCmd(), "validate", path)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	for _, want := range []string{"is valid", "vibelight_AAAABBBB", "800ms transition", "/vibelight/api/5/id/AAAABBBB/state/"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigValidateReportsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.toml")
	doc := "[led]\nmax_brightness = 150\ncount = 0\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, CreateConfigCmd(), "validate", path)
	if err == nil {
		t.Fatal("validate should fail")
	}
	for _, want := range []string{"led.max_brightness", "led.count"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigValidateParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.toml")
	if err := os.WriteFile(path, []byte("[led]\nbogus = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, CreateConfigCmd(), "validate", path); err == nil || !strings.Contains(err.Error(), "unknown config keys") {
		t.Errorf("err = %v, want unknown keys", err)
	}
}

func TestColorPack(t *testing.T) {
	out, _, err := run(t, CreateColorCmd(), "pack", "255", "128", "64", "128")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "packed: 0x80ff8040 (2164228160)") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, _, err = run(t, CreateColorCmd(), "pack", "1", "2", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "packed: 0x00010203") {
		t.Errorf("white should default to 0:\n%s", out)
	}
}

func TestColorPackRejectsOutOfRange(t *testing.T) {
	_, _, err := run(t, CreateColorCmd(), "pack", "256", "0", "0")
	if err == nil || !strings.Contains(err.Error(), "red") {
		t.Errorf("err = %v, want red range error", err)
	}
}

func TestColorUnpack(t *testing.T) {
	for _, value := range []string{"0x80ff8040", "2164228160", "#80ff8040"} {
		out, _, err := run(t, CreateColorCmd(), "unpack", value)
		if err != nil {
			t.Fatalf("%s: %v", value, err)
		}
		if !strings.Contains(out, "red:    255") || !strings.Contains(out, "white:  128") {
			t.Errorf("%s: unexpected output:\n%s", value, out)
		}
	}

	if _, _, err := run(t, CreateColorCmd(), "unpack", "nope"); err == nil {
		t.Error("unpack of garbage should fail")
	}
}

func TestEffectList(t *testing.T) {
	out, _, err := run(t, CreateEffectCmd(), "list")
	if err != nil {
		t.Fatal(err)
	}
	want := "0\tnone\n1\trainbow\n2\trainbowCycle\n3\tlaserScanner\n"
	if out != want {
		t.Errorf("list = %q, want %q", out, want)
	}
}

func TestEffectParse(t *testing.T) {
	out, errOut, err := run(t, CreateEffectCmd(), "parse", "laserScanner")
	if err != nil {
		t.Fatal(err)
	}
	if out != "3\tlaserScanner\n" || errOut != "" {
		t.Errorf("parse = %q / %q", out, errOut)
	}

	out, errOut, _ = run(t, CreateEffectCmd(), "parse", "strobe")
	if out != "0\tnone\n" || !strings.Contains(errOut, "unknown effect") {
		t.Errorf("fallback = %q / %q", out, errOut)
	}
}
