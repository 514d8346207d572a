package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sonemaro/numloc/pkg/logger"
)

type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

func TestProgress(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		operations func(Progress)
		verify     func(*testing.T, string, *mockLogger)
	}{
		{
			name:   "non terminal output draws nothing",
			config: Config{},
			operations: func(p Progress) {
				p.Start("Counting...")
				p.Update(Status{Files: 1, Lines: 10})
				p.Complete("done")
			},
			verify: func(t *testing.T, out string, log *mockLogger) {
				assert.Empty(t, out)
				assert.Contains(t, log.logs, "DEBUG: Completing progress")
			},
		},
		{
			name:   "forced output renders status",
			config: Config{Force: true, NoColor: true, Width: 200},
			operations: func(p Progress) {
				p.Start("")
				p.Update(Status{Files: 3, Lines: 42, Skipped: 1, CurrentItem: "src/main.go"})
				p.Complete("Count completed")
			},
			verify: func(t *testing.T, out string, log *mockLogger) {
				assert.Contains(t, out, "3 files, 42 lines, 1 skipped")
				assert.Contains(t, out, "src/main.go")
				assert.True(t, strings.HasSuffix(out, "\nCount completed\n"))
				assert.NotContains(t, out, "\033[")
			},
		},
		{
			name:   "updates are throttled",
			config: Config{Force: true, NoColor: true, Width: 200, RefreshRate: time.Hour},
			operations: func(p Progress) {
				p.Start("")
				p.Update(Status{Files: 1, CurrentItem: "first"})
				p.Update(Status{Files: 2, CurrentItem: "second"})
				p.Stop()
			},
			verify: func(t *testing.T, out string, log *mockLogger) {
				assert.Contains(t, out, "first")
				assert.NotContains(t, out, "second")
			},
		},
		{
			name:   "error clears line and prints message",
			config: Config{Force: true, NoColor: true},
			operations: func(p Progress) {
				p.Start("")
				p.Update(Status{Files: 1})
				p.Error("Count failed")
			},
			verify: func(t *testing.T, out string, log *mockLogger) {
				assert.True(t, strings.HasSuffix(out, "\rCount failed\n"))
			},
		},
		{
			name:   "colors use ansi sequences",
			config: Config{Force: true},
			operations: func(p Progress) {
				p.Start("")
				p.Update(Status{Files: 1})
				p.Stop()
			},
			verify: func(t *testing.T, out string, log *mockLogger) {
				assert.Contains(t, out, "\033[36m")
				assert.True(t, strings.HasSuffix(out, "\r\033[K"))
			},
		},
		{
			name:   "clear lets the next update redraw",
			config: Config{Force: true, NoColor: true, Width: 200, RefreshRate: time.Hour},
			operations: func(p Progress) {
				p.Start("")
				p.Update(Status{Files: 1, CurrentItem: "first"})
				p.Clear()
				p.Update(Status{Files: 2, CurrentItem: "second"})
			},
			verify: func(t *testing.T, out string, log *mockLogger) {
				assert.Contains(t, out, "first")
				assert.Contains(t, out, "second")
			},
		},
		{
			name:   "disabled wins over force",
			config: Config{Force: true, Disabled: true},
			operations: func(p Progress) {
				p.Start("Counting...")
				p.Update(Status{Files: 1})
				p.Complete("done")
			},
			verify: func(t *testing.T, out string, log *mockLogger) {
				assert.Empty(t, out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := &mockLogger{}

			cfg := tt.config
			cfg.Output = &buf
			p := New(cfg, log)

			tt.operations(p)
			tt.verify(t, buf.String(), log)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "...efghij", truncate("abcdefghij", 9))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "unbounded", truncate("unbounded", 0))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "250ms", formatElapsed(250*time.Millisecond))
	assert.Equal(t, "2.5s", formatElapsed(2500*time.Millisecond))
	assert.Equal(t, "1m30s", formatElapsed(90*time.Second+400*time.Millisecond))
}
