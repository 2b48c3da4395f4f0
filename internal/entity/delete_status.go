package entity

import "github.com/questx-lab/mudstore/pkg/enum"

// DeleteStatus reports what a room deletion removed.
type DeleteStatus int

var (
	DeleteStatusOK          = enum.New(DeleteStatus(0), "OK")
	DeleteStatusAreaDeleted = enum.New(DeleteStatus(101), "AREA_DELETED")
)

const AreaDeletedMessage = "Area Deleted"

func (s DeleteStatus) String() string {
	return enum.ToString(s)
}
