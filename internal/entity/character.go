package entity

const CharacterRoomField = "room"

type Character struct {
	Name  string `mapstructure:"name" structs:"name"`
	Owner string `mapstructure:"owner" structs:"owner"`
	Room  string `mapstructure:"room" structs:"room"`
}

// NewDefaultCharacter returns the record written for a freshly created
// character standing in room.
func NewDefaultCharacter(name, owner, room string) Character {
	return Character{Name: name, Owner: owner, Room: room}
}
