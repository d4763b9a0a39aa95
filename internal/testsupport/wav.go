package testsupport

import "bytes"
import "encoding/binary"
import "os"
import "path/filepath"
import "testing"

// PCM builds a PCM wav file from interleaved frames. bits is 8 or 16; 8-bit
// frames are stored unsigned as given.
func PCM(t testing.TB, rate, channels, bits int, frames []int32) []byte {
	t.Helper()

	var data bytes.Buffer
	for _, v := range frames {
		switch bits {
		case 8:
			data.WriteByte(byte(v))
		case 16:
			binary.Write(&data, binary.LittleEndian, int16(v))
		default:
			t.Fatalf("unsupported bits %d", bits)
		}
	}

	blockAlign := channels * bits / 8
	var out bytes.Buffer
	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(36+data.Len()))
	out.WriteString("WAVE")
	out.WriteString("fmt ")
	binary.Write(&out, binary.LittleEndian, uint32(16))
	binary.Write(&out, binary.LittleEndian, uint16(1))
	binary.Write(&out, binary.LittleEndian, uint16(channels))
	binary.Write(&out, binary.LittleEndian, uint32(rate))
	binary.Write(&out, binary.LittleEndian, uint32(rate*blockAlign))
	binary.Write(&out, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&out, binary.LittleEndian, uint16(bits))
	out.WriteString("data")
	binary.Write(&out, binary.LittleEndian, uint32(data.Len()))
	out.Write(data.Bytes())
	return out.Bytes()
}

// WriteWAV writes PCM frames to path, creating parent directories.
func WriteWAV(t testing.TB, path string, rate, channels, bits int, frames []int32) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, PCM(t, rate, channels, bits, frames), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
