package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToStringFixedWidth(t *testing.T) {
	tests := []struct {
		num, width int
		expected   string
	}{
		{5, 3, "  5"},
		{42, 3, " 42"},
		{123, 3, "123"},
		{1234, 3, "1234"}, // never truncated
		{-7, 3, " -7"},
		{0, 2, " 0"},
		{9, 0, "9"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IntToStringFixedWidth(tt.num, tt.width), "num=%d width=%d", tt.num, tt.width)
	}
}

func TestIntToStringFixedWidth_BoardHeader(t *testing.T) {
	// Column headers of a 12 wide board stay aligned at width 2
	for col := 0; col < 12; col++ {
		assert.Len(t, IntToStringFixedWidth(col, 2), 2)
	}
}

func TestGetCommandType(t *testing.T) {
	assert.Equal(t, "nil", GetCommandType(nil))
	assert.Equal(t, CommandToggleCrystal.String(), GetCommandType(&ToggleCrystal{Target: NewCoordinate(0, 0)}))
	assert.Equal(t, CommandMovePlayer.String(), GetCommandType(&MovePlayer{Target: NewCoordinate(0, 1)}))
	assert.Equal(t, CommandSolvePath.String(), GetCommandType(SolvePath{}))
	assert.Equal(t, CommandClearBoard.String(), GetCommandType(ClearBoard{}))
	assert.Equal(t, CommandExportBoard.String(), GetCommandType(ExportBoard{}))
}
