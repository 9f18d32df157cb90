package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunReportsCensus(t *testing.T) {
	var out bytes.Buffer
	opts := options{scene: "hourglass", frames: 20, seed: 3, cell: 16, every: 10, print: true}
	if err := run(opts, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"Dimension: 40 x 30", "frame 10:", "frame 20:", "Ticks: 20", "sand=", "#"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatal("color disabled but escape codes were written")
	}
}

func TestRunFastMode(t *testing.T) {
	var out bytes.Buffer
	opts := options{scene: "empty", frames: 4, seed: 1, cell: 32, fast: true}
	if err := run(opts, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Ticks: 20") {
		t.Fatalf("fast mode should run 5 ticks per frame:\n%s", out.String())
	}
}

func TestRunUnknownScene(t *testing.T) {
	var out bytes.Buffer
	if err := run(options{scene: "nope", frames: 1, cell: 8}, &out); err == nil {
		t.Fatal("expected an error for an unknown scene")
	}
}
