package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildWAV assembles a minimal RIFF/WAVE file around pcm.
func buildWAV(sampleRate int, channels, bitDepth uint16, pcm []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, channels)
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bitDepth) / 8
	binary.Write(&buf, binary.LittleEndian, byteRate)
	blockAlign := channels * bitDepth / 8
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, bitDepth)

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

func TestParseWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	data := buildWAV(44100, 1, 16, pcm)

	format, got, err := ParseWAV(data)
	if err != nil {
		t.Fatalf("ParseWAV error: %v", err)
	}
	if format.SampleRate != 44100 || format.Channels != 1 || format.BitDepth != 16 {
		t.Errorf("format = %+v, want 44100/1/16", format)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("pcm = %v, want %v", got, pcm)
	}
}

func TestParseWAVStereo(t *testing.T) {
	pcm := make([]byte, 8)
	format, _, err := ParseWAV(buildWAV(22050, 2, 16, pcm))
	if err != nil {
		t.Fatalf("ParseWAV error: %v", err)
	}
	if format.SampleRate != 22050 || format.Channels != 2 {
		t.Errorf("format = %+v, want 22050/2", format)
	}
}

func TestParseWAVRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not riff", []byte("OGGS....junk.junk")},
		{"riff but not wave", append([]byte("RIFF\x00\x00\x00\x00JUNK"), make([]byte, 16)...)},
		{"truncated", []byte("RIFF\x04\x00\x00\x00WAVE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseWAV(tt.data); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseWAVRejectsOversizedDataChunk(t *testing.T) {
	data := buildWAV(44100, 1, 16, []byte{1, 2, 3, 4})
	// Claim a data chunk far past the end of the file
	binary.LittleEndian.PutUint32(data[40:], 1<<30)
	if _, _, err := ParseWAV(data); err == nil {
		t.Error("expected an error for lying chunk size")
	}
}
