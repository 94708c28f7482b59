package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel("info")

	SetLevel("warn")
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") {
		t.Fatalf("missing warn line: %q", out)
	}
}

func TestSetLevelUnknown(t *testing.T) {
	defer SetLevel("info")
	SetLevel("debug")
	if SetLevel("verbose") {
		t.Fatalf("unknown level accepted")
	}
	if GetLevel() != LevelDebug {
		t.Fatalf("level changed on unknown input: %s", GetLevel())
	}
}

func TestPercentWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel("debug")
	defer SetLevel("info")

	msg := "render png 900x500 (100% done) id=abc"
	for _, logFn := range []func(string, ...interface{}){Warnf, Errorf} {
		buf.Reset()
		logFn(msg)
		if !strings.Contains(buf.String(), "(100% done)") || strings.Contains(buf.String(), "%!") {
			t.Fatalf("literal percent mangled: %q", buf.String())
		}
	}
}
