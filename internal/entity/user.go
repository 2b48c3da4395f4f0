package entity

const UserPasswordHashField = "pwhash"

type User struct {
	Username string `mapstructure:"username" structs:"username"`
	PwHash   string `mapstructure:"pwhash" structs:"pwhash"`
}
