package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeCmd(t *testing.T) {
	path := writeTestConfig(t, digitsConfig)

	t.Run("argument", func(t *testing.T) {
		out := runCmdWithConfig(t, path, nil, "encode", "A")
		require.Equal(t, "1332|\n", out)
	})

	t.Run("arguments joined by spaces", func(t *testing.T) {
		joined := runCmdWithConfig(t, path, nil, "encode", "A", "A")
		single := runCmdWithConfig(t, path, nil, "encode", "A A")
		require.Equal(t, single, joined)
	})

	t.Run("stdin", func(t *testing.T) {
		out := runCmdWithConfig(t, path, strings.NewReader("A\n"), "encode")
		require.Equal(t, "1332|\n", out)
	})

	t.Run("empty stdin encodes to empty", func(t *testing.T) {
		out := runCmdWithConfig(t, path, strings.NewReader(""), "encode")
		require.Equal(t, "\n", out)
	})

	t.Run("template", func(t *testing.T) {
		out := runCmdWithConfig(t, path, nil, "encode", "--template", `{{ "a" | upper }}`)
		require.Equal(t, "1332|\n", out)
	})

	t.Run("symbol override flags", func(t *testing.T) {
		out := runCmdWithConfig(t, path, nil, "encode", "--separator", "/", "A")
		require.Equal(t, "1332/\n", out)
	})

	t.Run("named charset override", func(t *testing.T) {
		out := runCmdWithConfig(t, path, nil, "-c", "dolls", "encode", "A")
		require.Equal(t, "▖▌▌▘‍\n", out)
	})
}
