package utils_test

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/kevin-chtw/tw_ting/utils"
	"github.com/sirupsen/logrus"
)

func Test_Formatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "hand dropped",
		Caller: &runtime.Frame{
			File:     "/src/tw_ting/mahjong/parser.go",
			Line:     42,
			Function: "github.com/kevin-chtw/tw_ting/mahjong.ParseReport",
		},
	}
	got, err := (&utils.Formatter{}).Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "2024-05-01 08:30:00 [warning] parser.go:42 ParseReport hand dropped\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	entry.Caller = nil
	got, _ = (&utils.Formatter{}).Format(entry)
	if string(got) != "2024-05-01 08:30:00 [warning] hand dropped\n" {
		t.Errorf("Format() without caller = %q", got)
	}
}

func Test_Logger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := utils.Logger(utils.LogOptions{Level: logrus.InfoLevel, Dir: dir, MaxAge: 24 * time.Hour})
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	l.Info("hello")
	l.Debug("hidden")

	files, err := os.ReadDir(dir)
	if err != nil || len(files) != 1 {
		t.Fatalf("log dir: %v, %v", files, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[info]") || !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Errorf("debug line written at info level")
	}
}

func Test_StringList(t *testing.T) {
	names := []string{"1萬", "東"}
	got, ok := utils.Strings(utils.StringList(names))
	if !ok || !slices.Equal(got, names) {
		t.Errorf("Strings(StringList(%v)) = %v, %v", names, got, ok)
	}
}
