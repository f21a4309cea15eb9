package rom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrBadMagic   = errors.New("not a supported rom (wrong signature or byte order)")
	ErrOutOfRange = errors.New("access outside the rom image")
	ErrBadString  = errors.New("string contains a NUL byte")
)

// ReadWriterAt is satisfied by *os.File.
type ReadWriterAt interface {
	io.ReaderAt
	io.WriterAt
}

// Image is a fixed-size rom image patched in place. Every access names its
// own offset, so results never depend on an earlier access.
type Image struct {
	rw     ReadWriterAt
	size   int64
	layout Layout
}

// NewImage wraps rw, which must hold exactly size bytes.
func NewImage(rw ReadWriterAt, size int64, layout Layout) *Image {
	return &Image{rw: rw, size: size, layout: layout}
}

// OpenFile opens an existing rom copy for patching. The caller closes the
// returned file once patching is done.
func OpenFile(path string, layout Layout) (*Image, *os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return NewImage(f, fi.Size(), layout), f, nil
}

func (img *Image) Size() int64 { return img.size }

func (img *Image) Layout() Layout { return img.layout }

func (img *Image) check(off int64, n int) error {
	if off < 0 || off+int64(n) > img.size {
		return fmt.Errorf("%w: %#x+%d (size %#x)", ErrOutOfRange, off, n, img.size)
	}
	return nil
}

// ReadAt reads exactly len(p) bytes at off.
func (img *Image) ReadAt(p []byte, off int64) error {
	if err := img.check(off, len(p)); err != nil {
		return err
	}
	if _, err := img.rw.ReadAt(p, off); err != nil {
		return fmt.Errorf("read %#x: %w", off, err)
	}
	return nil
}

// WriteAt writes p at off. It never grows the image.
func (img *Image) WriteAt(p []byte, off int64) error {
	if err := img.check(off, len(p)); err != nil {
		return err
	}
	if _, err := img.rw.WriteAt(p, off); err != nil {
		return fmt.Errorf("write %#x: %w", off, err)
	}
	return nil
}

// ReadU32At reads a big-endian word.
func (img *Image) ReadU32At(off int64) (uint32, error) {
	var b [4]byte
	if err := img.ReadAt(b[:], off); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// WriteU32At writes a big-endian word.
func (img *Image) WriteU32At(off int64, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return img.WriteAt(b[:], off)
}

// WriteCString writes s followed by a NUL byte.
func (img *Image) WriteCString(off int64, s string) error {
	if bytes.IndexByte([]byte(s), 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrBadString, s)
	}
	return img.WriteAt(append([]byte(s), 0), off)
}

// ReadCString reads at most max bytes at off and cuts at the first NUL.
// The read is shortened near the end of the image rather than failing.
func (img *Image) ReadCString(off int64, max int) (string, error) {
	if off >= 0 && off < img.size && off+int64(max) > img.size {
		max = int(img.size - off)
	}
	buf := make([]byte, max)
	if err := img.ReadAt(buf, off); err != nil {
		return "", err
	}
	if n := bytes.IndexByte(buf, 0); n >= 0 {
		buf = buf[:n]
	}
	return string(buf), nil
}

// CheckMagic fails with ErrBadMagic unless the signature is in place.
func (img *Image) CheckMagic() error {
	l := img.layout
	buf := make([]byte, len(l.Magic))
	if err := img.ReadAt(buf, l.MagicOffset); err != nil {
		return fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if string(buf) != l.Magic {
		return fmt.Errorf("%w: found %q at %#x", ErrBadMagic, buf, l.MagicOffset)
	}
	return nil
}

// ApplyWords writes each word in order.
func (img *Image) ApplyWords(words []Word) error {
	for _, w := range words {
		if err := img.WriteU32At(w.Offset, w.Value); err != nil {
			return err
		}
	}
	return nil
}

// ApplyCodePatches writes the unconditional patches and, when quickStart is
// set, the quick start patch.
func (img *Image) ApplyCodePatches(quickStart bool) error {
	if err := img.ApplyWords(img.layout.CodePatches); err != nil {
		return fmt.Errorf("code patches: %w", err)
	}
	if quickStart {
		if err := img.ApplyWords(img.layout.QuickStart); err != nil {
			return fmt.Errorf("quick start: %w", err)
		}
	}
	return nil
}

// RewriteExit points the warp record at warpPtr inside the room at roomPtr to
// entrance of the room called name.
//
// The record holds a RAM pointer to the destination name string followed by
// the entrance id. The pointer is read first and the string it names is then
// overwritten in place.
func (img *Image) RewriteExit(roomPtr, warpPtr uint32, name string, entrance uint32) error {
	l := img.layout
	rec := l.RoomFileOffset(roomPtr, warpPtr)

	namePtr, err := img.ReadU32At(rec + int64(l.ExitNameField))
	if err != nil {
		return fmt.Errorf("exit %#x/%#x: %w", roomPtr, warpPtr, err)
	}
	if err := img.WriteU32At(rec+int64(l.ExitEntranceField), entrance); err != nil {
		return fmt.Errorf("exit %#x/%#x: %w", roomPtr, warpPtr, err)
	}
	if err := img.WriteCString(l.RoomFileOffset(roomPtr, namePtr), name); err != nil {
		return fmt.Errorf("exit %#x/%#x: %w", roomPtr, warpPtr, err)
	}
	return nil
}

// ReadExit returns the destination currently encoded in a warp record.
func (img *Image) ReadExit(roomPtr, warpPtr uint32) (name string, entrance uint32, err error) {
	l := img.layout
	rec := l.RoomFileOffset(roomPtr, warpPtr)

	namePtr, err := img.ReadU32At(rec + int64(l.ExitNameField))
	if err != nil {
		return "", 0, err
	}
	entrance, err = img.ReadU32At(rec + int64(l.ExitEntranceField))
	if err != nil {
		return "", 0, err
	}
	name, err = img.ReadCString(l.RoomFileOffset(roomPtr, namePtr), l.RoomNameSize)
	if err != nil {
		return "", 0, err
	}
	return name, entrance, nil
}

// ApplyExits rewrites each fixed exit in order.
func (img *Image) ApplyExits(exits []ExitPatch) error {
	for _, e := range exits {
		if err := img.RewriteExit(e.RoomPtr, e.WarpPtr, e.Name, e.Entrance); err != nil {
			return err
		}
	}
	return nil
}
