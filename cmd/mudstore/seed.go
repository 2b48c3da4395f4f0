package main

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/questx-lab/mudstore/internal/entity"
	"github.com/questx-lab/mudstore/internal/repository"
	"github.com/questx-lab/mudstore/pkg/crypto"
	"github.com/questx-lab/mudstore/pkg/errorx"
	"github.com/questx-lab/mudstore/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

// World is the content of a seed file. Rooms are numbered in file order
// starting from 1, and corridors refer to rooms by that number.
type World struct {
	Areas      []WorldArea      `toml:"areas"`
	Corridors  []WorldCorridor  `toml:"corridors"`
	Users      []WorldUser      `toml:"users"`
	Characters []WorldCharacter `toml:"characters"`
}

type WorldArea struct {
	Code        string      `toml:"code"`
	Name        string      `toml:"name"`
	Description string      `toml:"description"`
	Rooms       []WorldRoom `toml:"rooms"`
}

type WorldRoom struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

type WorldCorridor struct {
	FromArea    string `toml:"from_area"`
	FromRoom    int    `toml:"from_room"`
	FromCommand string `toml:"from_command"`
	ToArea      string `toml:"to_area"`
	ToRoom      int    `toml:"to_room"`
	ToCommand   string `toml:"to_command"`
}

// WorldUser carries either a stored pwhash or a plain password that is
// hashed before it is written.
type WorldUser struct {
	Username string `toml:"username"`
	PwHash   string `toml:"pwhash"`
	Password string `toml:"password"`
}

type WorldCharacter struct {
	Username string `toml:"username"`
	Name     string `toml:"name"`
	Area     string `toml:"area"`
	Room     int    `toml:"room"`
}

func readWorld(path string) (World, error) {
	var world World
	if _, err := toml.DecodeFile(path, &world); err != nil {
		return World{}, fmt.Errorf("read world file %s: %w", path, err)
	}

	return world, nil
}

type seeder struct {
	areaRepo      repository.AreaRepository
	roomRepo      repository.RoomRepository
	userRepo      repository.UserRepository
	characterRepo repository.CharacterRepository
}

func (s *seeder) seed(ctx context.Context, world World) error {
	for _, area := range world.Areas {
		err := s.areaRepo.Create(ctx, area.Code, entity.Area{
			AreaCode:    area.Code,
			Name:        area.Name,
			Description: area.Description,
		})
		if err != nil {
			return fmt.Errorf("area %s: %w", area.Code, err)
		}

		for i, room := range area.Rooms {
			n, err := s.roomRepo.Add(ctx, area.Code, entity.Room{
				Name:        room.Name,
				Description: room.Description,
			})
			if err != nil {
				return fmt.Errorf("room %d of area %s: %w", i+1, area.Code, err)
			}

			if n != i+1 {
				xcontext.Logger(ctx).Warnf("Room %q of area %s was stored as number %d", room.Name, area.Code, n)
			}
		}

		xcontext.Logger(ctx).Infof("Seeded area %s with %d rooms", area.Code, len(area.Rooms))
	}

	for _, c := range world.Corridors {
		err := s.roomRepo.Connect(ctx,
			entity.Exit{Source: entity.RoomAt{AreaCode: c.FromArea, RoomNumber: c.FromRoom}, Command: c.FromCommand},
			entity.Exit{Source: entity.RoomAt{AreaCode: c.ToArea, RoomNumber: c.ToRoom}, Command: c.ToCommand},
		)
		if err != nil {
			return fmt.Errorf("corridor %s:%d-%s:%d: %w", c.FromArea, c.FromRoom, c.ToArea, c.ToRoom, err)
		}
	}

	for _, u := range world.Users {
		pwhash := u.PwHash
		if pwhash == "" && u.Password != "" {
			pwhash = crypto.PasswordHash(u.Password)
		}

		ok, err := s.userRepo.Create(ctx, u.Username, pwhash)
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}

		if !ok {
			return errorx.New(errorx.BadRequest, "user entry needs a username and a pwhash or password")
		}
	}

	for _, c := range world.Characters {
		room, err := entity.ResolveRoomCode(entity.RoomAt{AreaCode: c.Area, RoomNumber: c.Room})
		if err != nil {
			return fmt.Errorf("character %s: %w", c.Name, err)
		}

		ok, err := s.characterRepo.Create(ctx, c.Username, c.Name, room)
		if err != nil {
			return fmt.Errorf("character %s: %w", c.Name, err)
		}

		if !ok {
			return errorx.New(errorx.BadRequest, "character entry needs a username and a name")
		}
	}

	return nil
}

func (s *srv) startSeed(cliCtx *cli.Context) error {
	if cliCtx.NArg() != 1 {
		return errorx.New(errorx.BadRequest, "usage: %s seed <worldPath>", cliCtx.App.Name)
	}

	world, err := readWorld(cliCtx.Args().First())
	if err != nil {
		return err
	}

	ctx, err := s.load(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()

	sd := seeder{
		areaRepo:      s.areaRepo,
		roomRepo:      s.roomRepo,
		userRepo:      s.userRepo,
		characterRepo: s.characterRepo,
	}
	if err := sd.seed(ctx, world); err != nil {
		return err
	}

	fmt.Fprintf(cliCtx.App.Writer, "seeded %d areas, %d corridors, %d users, %d characters\n",
		len(world.Areas), len(world.Corridors), len(world.Users), len(world.Characters))
	return nil
}
