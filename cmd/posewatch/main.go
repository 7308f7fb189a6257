// Command posewatch prints the camera pose published by a running shadercam.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/leterax/go-shadercam/pkg/network"
)

func main() {
	serverAddr := flag.String("server", "localhost", "Broadcast address of a running shadercam")
	every := flag.Int("every", 30, "Print every Nth pose")
	flag.Parse()

	if *every < 1 {
		log.Fatalf("-every must be at least 1, got %d", *every)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, err := network.NewClient(ctx, *serverAddr)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	go func() {
		<-ctx.Done()
		client.Close()
	}()

	seen := 0
	client.OnPose = func(p network.Pose) {
		seen++
		if seen%*every != 0 {
			return
		}
		fmt.Printf("frame %6d  t=%8.2fs  pos=(%.2f, %.2f, %.2f)  yaw=%.3f pitch=%.3f\n",
			p.Frame, p.Elapsed, p.Position.X(), p.Position.Y(), p.Position.Z(), p.Yaw, p.Pitch)
	}

	if err := client.ProcessPackets(); err != nil && ctx.Err() == nil {
		log.Fatalf("Connection lost: %v", err)
	}
}
