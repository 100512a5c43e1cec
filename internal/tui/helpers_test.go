package tui

import (
	"bytes"
	"io"
	"os"

	"github.com/EmundoT/solbench/internal/core"
	"github.com/EmundoT/solbench/internal/types"
)

func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()
	fn()
	_ = w.Close()
	os.Stdout = old
	return <-done
}

func captureStderr(fn func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()
	fn()
	_ = w.Close()
	os.Stderr = old
	return <-done
}

// devNull is an io.Writer that discards all writes (used for bubbletea output in tests).
type devNull struct{}

func (devNull) Write(p []byte) (int, error) { return len(p), nil }

func analysisFor(name string) types.AnalysisResult {
	return types.AnalysisResult{Target: core.NewTargetFile("./database/"+name, 0)}
}
