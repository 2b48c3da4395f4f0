package common

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	KeySeparator = ":"

	AreasKey      = "AREAS"
	RoomsKey      = "RM"
	RoomsExitKey  = "EX"
	UsersKey      = "USERS"
	UserKey       = "USER"
	UserCharsKey  = "CH"
	CharactersKey = "CHARACTERS"
	CharacterKey  = "CHAR"
)

// BuildCode joins the string form of every part with colons.
func BuildCode(parts ...any) string {
	s := make([]string, 0, len(parts))
	for _, p := range parts {
		s = append(s, fmt.Sprint(p))
	}

	return strings.Join(s, KeySeparator)
}

// BuildAreaCode prefixes areaCode with the area namespace. Already qualified
// codes are returned unchanged.
func BuildAreaCode(areaCode string) string {
	if strings.HasPrefix(areaCode, AreasKey+KeySeparator) {
		return areaCode
	}

	return BuildCode(AreasKey, areaCode)
}

// ExtractAreaCode strips the area namespace from areaCode if present.
func ExtractAreaCode(areaCode string) string {
	return strings.TrimPrefix(areaCode, AreasKey+KeySeparator)
}

func BuildRoomCode(areaCode string, roomNumber int) string {
	return BuildCode(RoomsKey, ExtractAreaCode(areaCode), roomNumber)
}

func BuildRoomExitsCode(areaCode string, roomNumber int) string {
	return BuildCode(RoomsKey, ExtractAreaCode(areaCode), roomNumber, RoomsExitKey)
}

func ConvertRoomToExitsCode(roomCode string) string {
	return BuildCode(roomCode, RoomsExitKey)
}

// ParseRoomCode splits RM:<areacode>:<roomnumber> into its parts. The area
// code may itself contain colons; the room number is always the last part.
func ParseRoomCode(roomCode string) (string, int, error) {
	rest, ok := strings.CutPrefix(roomCode, RoomsKey+KeySeparator)
	if !ok {
		return "", 0, fmt.Errorf("room code %q does not start with %s", roomCode, RoomsKey)
	}

	idx := strings.LastIndex(rest, KeySeparator)
	if idx <= 0 {
		return "", 0, fmt.Errorf("room code %q has no area code", roomCode)
	}

	roomNumber, err := strconv.Atoi(rest[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("room code %q has an invalid room number: %w", roomCode, err)
	}

	return rest[:idx], roomNumber, nil
}

func BuildUserCode(username string) string {
	return BuildCode(UserKey, username)
}

func BuildUserCharacterCode(username string) string {
	return BuildCode(UserKey, username, UserCharsKey)
}

func BuildCharacterCode(characterName string) string {
	return BuildCode(CharacterKey, characterName)
}
