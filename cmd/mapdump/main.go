// mapdump loads a terrain directory and renders rooms as ASCII maps:
// '.' plain, '~' swamp, '#' wall.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/udisondev/screego/internal/config"
	"github.com/udisondev/screego/internal/mapdata"
	"github.com/udisondev/screego/internal/room"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "config/mapdump.yaml", "path to yaml config")
	roomArg := flag.String("room", "", "room to render; empty lists all loaded rooms")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	store, err := mapdata.Load(ctx, cfg.TerrainDir)
	if err != nil {
		return fmt.Errorf("loading map data: %w", err)
	}

	if *roomArg == "" {
		return listRooms(store)
	}

	name, err := room.ParseRoomName(*roomArg)
	if err != nil {
		return fmt.Errorf("bad -room: %w", err)
	}
	return dumpRoom(store, name)
}

func listRooms(store *mapdata.Store) error {
	rooms := store.Rooms()
	if len(rooms) == 0 {
		return fmt.Errorf("no terrain loaded")
	}
	for _, name := range rooms {
		terrain, _ := store.Terrain(name)
		plain, swamp, wall := terrainStats(terrain)
		fmt.Printf("%-10s plain=%-4d swamp=%-4d wall=%d\n", name, plain, swamp, wall)
	}
	return nil
}

func dumpRoom(store *mapdata.Store, name room.RoomName) error {
	terrain, ok := store.Terrain(name)
	if !ok {
		return fmt.Errorf("no terrain for room %s", name)
	}

	var b strings.Builder
	for y := uint8(0); y < room.Size; y++ {
		for x := uint8(0); x < room.Size; x++ {
			b.WriteByte(terrainGlyph(terrain.GetXY(x, y)))
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())

	plain, swamp, wall := terrainStats(terrain)
	fmt.Printf("%s: plain=%d swamp=%d wall=%d\n", name, plain, swamp, wall)
	return nil
}

func terrainGlyph(t room.Terrain) byte {
	switch t {
	case room.TerrainWall:
		return '#'
	case room.TerrainSwamp:
		return '~'
	default:
		return '.'
	}
}

func terrainStats(terrain *room.LocalRoomTerrain) (plain, swamp, wall int) {
	for y := uint8(0); y < room.Size; y++ {
		for x := uint8(0); x < room.Size; x++ {
			switch terrain.GetXY(x, y) {
			case room.TerrainWall:
				wall++
			case room.TerrainSwamp:
				swamp++
			default:
				plain++
			}
		}
	}
	return plain, swamp, wall
}
