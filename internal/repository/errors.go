package repository

import "github.com/questx-lab/mudstore/pkg/errorx"

var (
	ErrEmptyAreaCode          = errorx.New(errorx.BadRequest, "area code is required")
	ErrCreateAreaCodeMismatch = errorx.New(errorx.BadRequest, "area code in payload does not match the requested area code")
	ErrAreaAlreadyExists      = errorx.New(errorx.AlreadyExists, "area already exists")
	ErrUpdateAreaNoExist      = errorx.New(errorx.NotFound, "area to update does not exist")
	ErrAreaNotFound           = errorx.New(errorx.NotFound, "area not found")

	ErrCreateBadAreaCode = errorx.New(errorx.BadReference, "cannot add a room to an area that does not exist")
	ErrInvalidRoomNumber = errorx.New(errorx.BadRequest, "room number must be positive")
	ErrEmptyCommand      = errorx.New(errorx.BadRequest, "exit command is required")
	ErrRoomNotFound      = errorx.New(errorx.NotFound, "room not found")
	ErrRoomNumberTaken   = errorx.New(errorx.PreconditionFailed, "the next room number is held by a live room")
	ErrRoomsNotConnected = errorx.New(errorx.PreconditionFailed, "the passed rooms are not a two-way connection")

	ErrUserAlreadyExists   = errorx.New(errorx.AlreadyExists, "user already exists")
	ErrUserNotFound        = errorx.New(errorx.NotFound, "user not found")
	ErrUserPasswordNoMatch = errorx.New(errorx.Unauthenticated, "password hash does not match")

	ErrCharacterAlreadyExists = errorx.New(errorx.AlreadyExists, "character already exists")
	ErrCharacterNotFound      = errorx.New(errorx.NotFound, "character not found")
)
