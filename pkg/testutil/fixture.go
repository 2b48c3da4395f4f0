package testutil

import "github.com/questx-lab/mudstore/internal/entity"

var (
	KoboldValley = entity.Area{
		AreaCode:    "KDV",
		Name:        "Kobold Valley",
		Description: "A valley filled with dangerous Kobolds.",
	}

	GoblinCave = entity.Area{
		AreaCode:    "GCV",
		Name:        "Goblin Cave",
		Description: "A cave filled with goblins.",
	}

	WesternOverlook = entity.Room{
		Name:        "Western Overlook",
		Description: "A rocky ledge above the mouth of a cave.",
	}

	GoblinCaveEntrance = entity.Room{
		Name:        "Goblin Cave Entrance",
		Description: "The damp mouth of the goblin cave.",
	}

	GoblinCaveTunnel = entity.Room{
		Name:        "Narrow Tunnel",
		Description: "A low tunnel that smells of smoke.",
	}
)
