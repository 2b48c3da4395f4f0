package entity

import (
	"testing"

	"github.com/questx-lab/mudstore/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func TestAreaFromHash(t *testing.T) {
	area, err := AreaFromHash(map[string]string{
		"areacode":    "KDV",
		"name":        "Kobold Valley",
		"description": "A valley filled with dangerous Kobolds.",
		"size":        "3",
	})
	require.NoError(t, err)
	require.Equal(t, &Area{
		AreaCode:    "KDV",
		Name:        "Kobold Valley",
		Description: "A valley filled with dangerous Kobolds.",
		Size:        3,
	}, area)

	for _, size := range []string{"", "NaN", "1.5"} {
		area, err := AreaFromHash(map[string]string{"areacode": "KDV", "size": size})
		require.NoError(t, err)
		require.Equal(t, 0, area.Size, size)
	}

	area, err = AreaFromHash(map[string]string{"areacode": "KDV"})
	require.NoError(t, err)
	require.Equal(t, 0, area.Size)
}

func TestToHash(t *testing.T) {
	require.Equal(t, map[string]any{
		"areacode":    "KDV",
		"name":        "Kobold Valley",
		"description": "",
		"size":        0,
	}, ToHash(Area{AreaCode: "KDV", Name: "Kobold Valley"}))

	room := Room{AreaCode: "KDV", RoomNumber: 1, Name: "Western Overlook", Exits: map[string]string{"east": "RM:KDV:2"}}
	hash := ToHash(room)
	require.NotContains(t, hash, "exits")
	require.Equal(t, 1, hash["roomnumber"])
}

func TestToHashPatch(t *testing.T) {
	require.Equal(t,
		map[string]any{"name": "Kobold Death Valley"},
		ToHashPatch(Area{Name: "Kobold Death Valley"}),
	)
	require.Empty(t, ToHashPatch(Area{}))
	require.NotContains(t, ToHashPatch(Room{Exits: map[string]string{"up": "RM:A:1"}}), "-")
}

func TestRoomFromHash(t *testing.T) {
	room, err := RoomFromHash(map[string]string{
		"areacode":   "GCV",
		"roomnumber": "2",
		"name":       "Goblin Cave Entrance",
	}, map[string]string{})
	require.NoError(t, err)
	require.Equal(t, 2, room.RoomNumber)
	require.Nil(t, room.Exits)

	room, err = RoomFromHash(map[string]string{"areacode": "GCV", "roomnumber": "1"},
		map[string]string{"east": "RM:GCV:2"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"east": "RM:GCV:2"}, room.Exits)
	require.Equal(t, "RM:GCV:1", room.Code())
}

func TestResolveRoomCode(t *testing.T) {
	code, err := ResolveRoomCode(RoomKey("RM:KDV:1"))
	require.NoError(t, err)
	require.Equal(t, "RM:KDV:1", code)

	code, err = ResolveRoomCode(RoomAt{AreaCode: "AREAS:KDV", RoomNumber: 4})
	require.NoError(t, err)
	require.Equal(t, "RM:KDV:4", code)

	code, err = ResolveRoomCode(Room{AreaCode: "GCV", RoomNumber: 2}.Ref())
	require.NoError(t, err)
	require.Equal(t, "RM:GCV:2", code)

	for _, ref := range []RoomRef{nil, RoomKey(""), RoomAt{AreaCode: "KDV"}, RoomAt{RoomNumber: 1}, RoomAt{AreaCode: "AREAS:", RoomNumber: 1}} {
		_, err := ResolveRoomCode(ref)
		require.True(t, errorx.Is(err, errorx.BadRequest), "%#v", ref)
	}
}

func TestNewDefaultCharacter(t *testing.T) {
	require.Equal(t,
		Character{Name: "Grim", Owner: "bob", Room: "RM:KDV:1"},
		NewDefaultCharacter("Grim", "bob", "RM:KDV:1"),
	)
}

func TestDeleteStatus(t *testing.T) {
	require.Equal(t, "OK", DeleteStatusOK.String())
	require.Equal(t, "AREA_DELETED", DeleteStatusAreaDeleted.String())
	require.Equal(t, 101, int(DeleteStatusAreaDeleted))
}
