package entity

import (
	"github.com/questx-lab/mudstore/internal/common"
	"github.com/questx-lab/mudstore/pkg/errorx"
)

const (
	RoomNumberField = "roomnumber"
	RoomNameField   = "name"
)

type Room struct {
	AreaCode    string `mapstructure:"areacode" structs:"areacode"`
	RoomNumber  int    `mapstructure:"roomnumber" structs:"roomnumber"`
	Name        string `mapstructure:"name" structs:"name"`
	Description string `mapstructure:"description" structs:"description"`

	// Exits maps a command to a destination room code. It lives in its own
	// hash and is nil when the room has no exits.
	Exits map[string]string `mapstructure:"-" structs:"-"`
}

func (r Room) Code() string {
	return common.BuildRoomCode(r.AreaCode, r.RoomNumber)
}

func (r Room) Ref() RoomRef {
	return RoomAt{AreaCode: r.AreaCode, RoomNumber: r.RoomNumber}
}

// RoomFromHash decodes a room hash and attaches exits when there are any.
func RoomFromHash(hash, exits map[string]string) (*Room, error) {
	var room Room
	if err := FromHash(normalizeInt(hash, RoomNumberField), &room); err != nil {
		return nil, err
	}

	if len(exits) > 0 {
		room.Exits = exits
	}

	return &room, nil
}

// RoomRef identifies a room either by its stored key or by area code and room
// number.
type RoomRef interface {
	roomCode() (string, error)
}

// RoomKey is a room code such as RM:KDV:1.
type RoomKey string

func (k RoomKey) roomCode() (string, error) {
	if k == "" {
		return "", errorx.New(errorx.BadRequest, "empty room key")
	}

	return string(k), nil
}

type RoomAt struct {
	AreaCode   string
	RoomNumber int
}

func (r RoomAt) roomCode() (string, error) {
	if common.ExtractAreaCode(r.AreaCode) == "" || r.RoomNumber < 1 {
		return "", errorx.New(errorx.BadRequest,
			"no room code could be built from area %q and room number %d", r.AreaCode, r.RoomNumber)
	}

	return common.BuildRoomCode(r.AreaCode, r.RoomNumber), nil
}

// ResolveRoomCode turns any RoomRef into the canonical room code.
func ResolveRoomCode(ref RoomRef) (string, error) {
	if ref == nil {
		return "", errorx.New(errorx.BadRequest, "missing room reference")
	}

	return ref.roomCode()
}

// Exit is one side of a two-way corridor: leaving Source by Command leads to
// the other side's room.
type Exit struct {
	Source  RoomRef
	Command string
}
