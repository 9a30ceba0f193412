package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// WAVFormat holds WAV file format information
type WAVFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// ParseWAV parses a RIFF/WAVE file and returns its format and raw PCM
// data, used for user-supplied ring tones.
func ParseWAV(data []byte) (*WAVFormat, []byte, error) {
	reader := bytes.NewReader(data)

	riff := make([]byte, 4)
	if _, err := io.ReadFull(reader, riff); err != nil {
		return nil, nil, err
	}
	if string(riff) != "RIFF" {
		return nil, nil, errors.New("not a RIFF file")
	}

	// Skip file size
	reader.Seek(4, io.SeekCurrent)

	wave := make([]byte, 4)
	if _, err := io.ReadFull(reader, wave); err != nil {
		return nil, nil, err
	}
	if string(wave) != "WAVE" {
		return nil, nil, errors.New("not a WAVE file")
	}

	format := &WAVFormat{}
	var dataStart int64
	var dataSize uint32

	// Walk chunks until the data chunk
	for {
		chunkID := make([]byte, 4)
		if _, err := io.ReadFull(reader, chunkID); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, nil, err
		}

		var chunkSize uint32
		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return nil, nil, err
		}

		switch string(chunkID) {
		case "fmt ":
			var audioFormat uint16
			binary.Read(reader, binary.LittleEndian, &audioFormat)

			var numChannels uint16
			binary.Read(reader, binary.LittleEndian, &numChannels)
			format.Channels = int(numChannels)

			var sampleRate uint32
			binary.Read(reader, binary.LittleEndian, &sampleRate)
			format.SampleRate = int(sampleRate)

			// Skip byte rate and block align
			reader.Seek(6, io.SeekCurrent)

			var bitsPerSample uint16
			binary.Read(reader, binary.LittleEndian, &bitsPerSample)
			format.BitDepth = int(bitsPerSample)

			// Skip any extra format bytes
			if chunkSize > 16 {
				reader.Seek(int64(chunkSize-16), io.SeekCurrent)
			}
		case "data":
			dataStart, _ = reader.Seek(0, io.SeekCurrent)
			dataSize = chunkSize
		default:
			reader.Seek(int64(chunkSize), io.SeekCurrent)
		}

		if dataSize > 0 {
			break
		}
	}

	if format.SampleRate == 0 || dataSize == 0 {
		return nil, nil, errors.New("missing fmt or data chunk")
	}
	if int64(dataSize) > int64(len(data)) {
		return nil, nil, errors.New("data chunk larger than file")
	}

	audioData := make([]byte, dataSize)
	reader.Seek(dataStart, io.SeekStart)
	if _, err := io.ReadFull(reader, audioData); err != nil {
		return nil, nil, err
	}

	return format, audioData, nil
}
