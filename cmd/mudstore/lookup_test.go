package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_printRoomTable(t *testing.T) {
	var buf bytes.Buffer
	printRoomTable(&buf, map[string]string{
		"RM:KDV:10": "10: Kobold Den",
		"RM:KDV:2":  "2: Valley Floor",
		"RM:KDV:1":  "1: Western Overlook",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "RM:KDV:1 "))
	require.True(t, strings.HasPrefix(lines[1], "RM:KDV:2 "))
	require.True(t, strings.HasPrefix(lines[2], "RM:KDV:10 "))
	require.True(t, strings.HasSuffix(lines[2], "10: Kobold Den"))
}
