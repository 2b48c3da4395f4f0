package main

import (
	"fmt"
	"io"

	"github.com/questx-lab/mudstore/internal/common"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func (s *srv) startLookup(cliCtx *cli.Context) error {
	ctx, err := s.load(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()

	if area := cliCtx.String("area"); area != "" {
		table, err := s.lookup.RoomTableByArea(ctx, area)
		if err != nil {
			return err
		}

		printRoomTable(cliCtx.App.Writer, table)
		return nil
	}

	tables, err := s.lookup.AllRoomsTable(ctx)
	if err != nil {
		return err
	}

	codes := maps.Keys(tables)
	slices.Sort(codes)
	for _, code := range codes {
		fmt.Fprintf(cliCtx.App.Writer, "[%s]\n", code)
		printRoomTable(cliCtx.App.Writer, tables[code])
	}

	return nil
}

func printRoomTable(w io.Writer, table map[string]string) {
	codes := maps.Keys(table)
	slices.SortFunc(codes, func(a, b string) bool {
		return roomNumber(a) < roomNumber(b)
	})
	for _, code := range codes {
		fmt.Fprintf(w, "%-16s %s\n", code, table[code])
	}
}

func roomNumber(roomCode string) int {
	_, n, err := common.ParseRoomCode(roomCode)
	if err != nil {
		return 0
	}

	return n
}
