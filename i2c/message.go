package i2c

// MsgFlag carries per-message protocol hints. The values follow the
// Linux i2c_msg flag encoding.
type MsgFlag uint16

// Message flags.
const (
	// MsgNone carries no hints.
	MsgNone MsgFlag = 0x0000
	// MsgRead marks data flowing from target to controller.
	MsgRead MsgFlag = 0x0001
	// MsgTen marks a 10-bit target address.
	MsgTen MsgFlag = 0x0010
	// MsgDMASafe indicates the buffer is safe for DMA transfers.
	MsgDMASafe MsgFlag = 0x0200
	// MsgRecvLen indicates the message length is encoded in the first
	// received byte (SMBus block transfer convention).
	MsgRecvLen MsgFlag = 0x0400
	// MsgNoReadAck skips the controller ACK/NAK bit in a read message.
	MsgNoReadAck MsgFlag = 0x0800
	// MsgIgnoreNak treats a NAK from the target as an ACK.
	MsgIgnoreNak MsgFlag = 0x1000
	// MsgRevDirAddr toggles the read/write bit.
	MsgRevDirAddr MsgFlag = 0x2000
	// MsgNoStart skips the repeated start sequence.
	MsgNoStart MsgFlag = 0x4000
	// MsgStop forces a stop condition after this message.
	MsgStop MsgFlag = 0x8000
)

// IsSet reports whether every bit of g is set in f.
func (f MsgFlag) IsSet(g MsgFlag) bool { return f&g == g }

// Operation is one segment of a transaction: a byte buffer moving in one
// direction, with optional protocol hints.
type Operation struct {
	flags MsgFlag
	buf   []byte
}

// Read constructs a read operation filling buf from the target.
func Read(buf []byte) Operation {
	return Operation{flags: MsgRead, buf: buf}
}

// Write constructs a write operation sending buf to the target.
func Write(buf []byte) Operation {
	return Operation{buf: buf}
}

// WithFlags returns a copy of o carrying additional protocol hints. The
// direction bit cannot be changed this way.
func (o Operation) WithFlags(f MsgFlag) Operation {
	o.flags |= f &^ MsgRead
	return o
}

// IsRead reports whether the operation reads from the target.
func (o Operation) IsRead() bool { return o.flags.IsSet(MsgRead) }

// Flags returns the operation's protocol hints.
func (o Operation) Flags() MsgFlag { return o.flags }

// Buf returns the operation's byte buffer.
func (o Operation) Buf() []byte { return o.buf }

// Len returns the buffer length in bytes.
func (o Operation) Len() int { return len(o.buf) }
