package entity

const (
	AreaCodeField = "areacode"
	AreaSizeField = "size"
)

type Area struct {
	AreaCode    string `mapstructure:"areacode" structs:"areacode"`
	Name        string `mapstructure:"name" structs:"name"`
	Description string `mapstructure:"description" structs:"description"`

	// Size counts reserved room numbers and is the next room number minus
	// one. Only room creation and deletion change it.
	Size int `mapstructure:"size" structs:"size"`
}

// AreaFromHash decodes an area hash. A missing or unparseable size reads as 0.
func AreaFromHash(hash map[string]string) (*Area, error) {
	var area Area
	if err := FromHash(normalizeInt(hash, AreaSizeField), &area); err != nil {
		return nil, err
	}

	return &area, nil
}
