package network

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Packet IDs sent from shadercam to subscribers
const (
	PacketIDPose uint8 = 0x00
)

// Pose packet structure: id(U8) + frame(I32) + elapsed(F32) + x(F32) + y(F32) + z(F32) + yaw(F32) + pitch(F32)
const posePacketSize = 1 + 4*7

// Pose is the camera state published once per rendered frame.
type Pose struct {
	Frame    int32
	Elapsed  float32
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// EncodePose builds a pose packet. Values are big endian.
func EncodePose(p Pose) []byte {
	packet := make([]byte, posePacketSize)
	packet[0] = PacketIDPose

	binary.BigEndian.PutUint32(packet[1:], uint32(p.Frame))
	binary.BigEndian.PutUint32(packet[5:], math.Float32bits(p.Elapsed))
	binary.BigEndian.PutUint32(packet[9:], math.Float32bits(p.Position[0]))
	binary.BigEndian.PutUint32(packet[13:], math.Float32bits(p.Position[1]))
	binary.BigEndian.PutUint32(packet[17:], math.Float32bits(p.Position[2]))
	binary.BigEndian.PutUint32(packet[21:], math.Float32bits(p.Yaw))
	binary.BigEndian.PutUint32(packet[25:], math.Float32bits(p.Pitch))

	return packet
}

// DecodePose parses a packet produced by EncodePose.
func DecodePose(packet []byte) (Pose, error) {
	if len(packet) == 0 {
		return Pose{}, fmt.Errorf("empty packet")
	}
	if packet[0] != PacketIDPose {
		return Pose{}, fmt.Errorf("unknown packet ID: %d", packet[0])
	}
	if len(packet) != posePacketSize {
		return Pose{}, fmt.Errorf("pose packet has %d bytes, want %d", len(packet), posePacketSize)
	}

	f := func(offset int) float32 {
		return math.Float32frombits(binary.BigEndian.Uint32(packet[offset:]))
	}

	return Pose{
		Frame:    int32(binary.BigEndian.Uint32(packet[1:])),
		Elapsed:  f(5),
		Position: mgl32.Vec3{f(9), f(13), f(17)},
		Yaw:      f(21),
		Pitch:    f(25),
	}, nil
}
