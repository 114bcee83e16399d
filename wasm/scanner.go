package wasm

import (
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"

	"github.com/pgavlin/wade/wasm/leb128"
)

// A Scanner decodes the section sequence of a WASM module from a byte
// buffer. NewScanner validates the module header; each call to Next then
// decodes one section record. Scanning stops at the first structural
// violation; records decoded before the violation remain valid.
//
// A Scanner makes no copies: the payloads of the sections it returns are
// views into the buffer passed to NewScanner.
type Scanner struct {
	buf     []byte
	pos     int64
	version uint32
	section Section
	err     error
}

// NewScanner validates the module header in buf and returns a scanner
// positioned at the first section. It returns an error wrapping
// ErrInvalidMagic if the first four bytes are not the WASM magic number, and
// a truncation error if buf is shorter than the 8-byte header; the magic is
// checked first when at least four bytes are present.
func NewScanner(buf []byte) (*Scanner, error) {
	if len(buf) >= 4 && binary.LittleEndian.Uint32(buf) != Magic {
		return nil, fmt.Errorf("%w (found % 02x)", ErrInvalidMagic, buf[:4])
	}
	if len(buf) < 8 {
		return nil, fmt.Errorf("wasm: truncated module header: %d bytes", len(buf))
	}
	return &Scanner{
		buf:     buf,
		pos:     8,
		version: binary.LittleEndian.Uint32(buf[4:]),
	}, nil
}

// Version returns the version number from the module's header. The version is
// reported as found; scanning does not require a particular value.
func (s *Scanner) Version() uint32 {
	return s.version
}

// Section returns the section decoded by the last call to Next, if any.
func (s *Scanner) Section() Section {
	return s.section
}

// Error returns the error encountered during scanning, if any.
func (s *Scanner) Error() error {
	return s.err
}

// Next decodes the next section. Next returns false if an error occurs or if
// the end of the buffer has been reached and true otherwise.
func (s *Scanner) Next() bool {
	if s.err != nil || s.pos >= int64(len(s.buf)) {
		return false
	}

	start := s.pos
	id := SectionID(s.buf[s.pos])
	s.pos++

	size, next, err := leb128.ReadVarUint64(s.buf, int(s.pos))
	if err != nil {
		s.err = &SectionError{Offset: start, ID: id, Err: err}
		return false
	}
	s.pos = int64(next)

	if remaining := int64(len(s.buf)) - s.pos; size > uint64(remaining) {
		s.err = &SectionError{
			Offset: start,
			ID:     id,
			Err:    fmt.Errorf("%w: %d bytes declared, %d remaining", ErrSectionOverrun, size, remaining),
		}
		return false
	}

	raw := RawSection{
		Start: s.pos,
		End:   s.pos + int64(size),
		ID:    id,
		Bytes: s.buf[s.pos : s.pos+int64(size)],
	}
	s.pos = raw.End

	if id != SectionIDCustom {
		s.section = &raw
		Logger().Debug("section",
			zap.Uint8("id", uint8(raw.ID)),
			zap.Int64("start", raw.Start),
			zap.Int64("end", raw.End))
		return true
	}

	custom := &SectionCustom{RawSection: raw}
	if err := custom.decodePayload(); err != nil {
		s.err = &SectionError{Offset: start, ID: id, Err: err}
		return false
	}
	s.section = custom
	Logger().Debug("custom section",
		zap.String("name", custom.Name),
		zap.Int64("start", raw.Start),
		zap.Int64("end", raw.End))
	return true
}
