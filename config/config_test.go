package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomSharingModesDefaults(t *testing.T) {
	modes := RoomSharingModes()
	assert.Equal(t, defaultRoomSharingModes, modes)
}

func TestRoomSharingModesOverride(t *testing.T) {
	t.Setenv("ROOM_SHARING_MODE_1", "Custom mode|0|1|0|288")

	modes := RoomSharingModes()
	assert.Equal(t, "Custom mode|0|1|0|288", modes[0])
	assert.Equal(t, defaultRoomSharingModes[1], modes[1])
}

func TestRoomSharingModesBlankEntryEndsList(t *testing.T) {
	// a blank slot terminates the list even when later slots are set
	t.Setenv("ROOM_SHARING_MODE_2", "")
	t.Setenv("ROOM_SHARING_MODE_3", "Never reached|0|1|0|1")

	modes := RoomSharingModes()
	assert.Len(t, modes, 1)
	assert.Equal(t, defaultRoomSharingModes[0], modes[0])
}

func TestRoomSharingModesExtendBeyondDefaults(t *testing.T) {
	t.Setenv("ROOM_SHARING_MODE_4", "Extra mode|0|1|10|20")

	modes := RoomSharingModes()
	assert.Len(t, modes, 4)
	assert.Equal(t, "Extra mode|0|1|10|20", modes[3])
}
