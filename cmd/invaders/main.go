// Command invaders is the reference host for the cabinet core: it loads
// the standard Space Invaders ROM set, paces the cabinet's frame loop at
// 60 Hz, drains keyboard input into the cabinet's input ports, and blits
// each frame through a pixelgl window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/faiface/pixel/pixelgl"

	"github.com/student/spaceinvaders/cabinet"
	"github.com/student/spaceinvaders/internal/host"
)

var (
	flagROMs  = flag.String("roms", "./roms", "directory containing the invaders.h/.g/.f/.e ROM set")
	flagDebug = flag.Bool("debug", false, "show a HUD with cycle count and next interrupt")
)

const frameInterval = time.Second / 60

func main() {
	flag.Parse()
	pixelgl.Run(run)
}

func run() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	machine := cabinet.New()
	if err := machine.LoadInvadersROMSet(*flagROMs); err != nil {
		log.Fatalf("%+v", err)
	}

	display := host.NewDisplay(*flagDebug)
	var input host.Input

	fmt.Println("Starting Space Invaders...")

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for !display.Closed() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		input.Poll(display.Window(), machine)

		machine.UpdateState()
		machine.UpdateScreenBuffer()

		display.Draw(machine.ScreenBuffer(), machine.CPU.Cycles, machine.NextInterrupt)

		<-ticker.C
	}
}
