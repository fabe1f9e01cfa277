package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/ports"
)

var (
	ErrNotCAF          = errors.New("not a CAF file")
	ErrMissingDesc     = errors.New("CAF file has no desc chunk")
	ErrUnknownDuration = errors.New("CAF duration cannot be determined")
)

// cafHeader is the 8-byte file header: 'caff', version, flags
type cafHeader struct {
	FileType    [4]byte
	FileVersion uint16
	FileFlags   uint16
}

type chunkHeader struct {
	ChunkType [4]byte
	ChunkSize int64
}

// audioDescription mirrors the 32-byte 'desc' chunk
type audioDescription struct {
	SampleRate       float64
	FormatID         [4]byte
	FormatFlags      uint32
	BytesPerPacket   uint32
	FramesPerPacket  uint32
	ChannelsPerFrame uint32
	BitsPerChannel   uint32
}

// packetTable mirrors the fixed part of the 'pakt' chunk
type packetTable struct {
	NumberPackets     int64
	NumberValidFrames int64
	PrimingFrames     int32
	RemainderFrames   int32
}

// Info is what the probe learns from a CAF header
type Info struct {
	Channels   uint32
	Duration   time.Duration
	FormatID   string
	SampleRate float64
}

// Probe implements ports.AudioProbe for Core Audio Format files
type Probe struct{}

// Verify interface compliance at compile time
var _ ports.AudioProbe = (*Probe)(nil)

// NewProbe creates a CAF probe
func NewProbe() *Probe {
	return &Probe{}
}

// Duration returns the playback length of the sound behind handle
func (p *Probe) Duration(handle domain.AudioHandle) (time.Duration, error) {
	info, err := p.Inspect(handle)
	if err != nil {
		return 0, err
	}
	return info.Duration, nil
}

// Inspect reads the CAF header chunks of the sound behind handle
func (p *Probe) Inspect(handle domain.AudioHandle) (Info, error) {
	f, err := os.Open(handle.Path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return Info{}, err
	}

	return parseCAF(f, stat.Size())
}

func parseCAF(r io.ReadSeeker, fileSize int64) (Info, error) {
	var header cafHeader
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrNotCAF, err)
	}
	if string(header.FileType[:]) != "caff" {
		return Info{}, ErrNotCAF
	}

	var (
		desc     *audioDescription
		pakt     *packetTable
		dataSize int64 = -1
		offset   int64 = 8
	)

	for offset < fileSize {
		var chunk chunkHeader
		if err := binary.Read(r, binary.BigEndian, &chunk); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return Info{}, err
		}
		offset += 12

		// Only the data chunk may be open-ended; any other negative size would rewind
		if chunk.ChunkSize < 0 && (chunk.ChunkSize != -1 || string(chunk.ChunkType[:]) != "data") {
			return Info{}, ErrUnknownDuration
		}

		switch string(chunk.ChunkType[:]) {
		case "desc":
			if chunk.ChunkSize < 32 {
				return Info{}, ErrUnknownDuration
			}
			var d audioDescription
			if err := binary.Read(r, binary.BigEndian, &d); err != nil {
				return Info{}, err
			}
			desc = &d
			if _, err := r.Seek(chunk.ChunkSize-32, io.SeekCurrent); err != nil {
				return Info{}, err
			}
		case "pakt":
			if chunk.ChunkSize < 24 {
				return Info{}, ErrUnknownDuration
			}
			var pt packetTable
			if err := binary.Read(r, binary.BigEndian, &pt); err != nil {
				return Info{}, err
			}
			pakt = &pt
			if _, err := r.Seek(chunk.ChunkSize-24, io.SeekCurrent); err != nil {
				return Info{}, err
			}
		case "data":
			// Size -1 means the data chunk runs to the end of the file
			if chunk.ChunkSize == -1 {
				dataSize = fileSize - offset
			} else {
				dataSize = chunk.ChunkSize
			}
			if _, err := r.Seek(dataSize, io.SeekCurrent); err != nil {
				return Info{}, err
			}
		default:
			if _, err := r.Seek(chunk.ChunkSize, io.SeekCurrent); err != nil {
				return Info{}, err
			}
		}

		if chunk.ChunkSize == -1 {
			break
		}
		offset += chunk.ChunkSize
	}

	if desc == nil {
		return Info{}, ErrMissingDesc
	}
	if desc.SampleRate <= 0 || math.IsNaN(desc.SampleRate) {
		return Info{}, ErrUnknownDuration
	}

	info := Info{
		Channels:   desc.ChannelsPerFrame,
		FormatID:   string(desc.FormatID[:]),
		SampleRate: desc.SampleRate,
	}

	var frames int64
	switch {
	case pakt != nil:
		frames = pakt.NumberValidFrames
	case desc.BytesPerPacket > 0 && desc.FramesPerPacket > 0 && dataSize >= 4:
		// The data chunk starts with a 4-byte edit count
		packets := (dataSize - 4) / int64(desc.BytesPerPacket)
		frames = packets * int64(desc.FramesPerPacket)
	default:
		return info, ErrUnknownDuration
	}

	info.Duration = time.Duration(float64(frames) / desc.SampleRate * float64(time.Second))
	return info, nil
}
