package disasm

// BuiltinTestBuffer is the byte stream the driver falls back to when no
// file arguments are given. It encodes a single three-instruction bundle
// under the default extension set (SMOL64 0.0 only): two loads that
// demote the bundle to INT, terminated by an ADD.
//
//	0x00: ldb x1, x2, 0   (HEAD, continues)
//	0x04: ldh x1, x3, 0   (BODY, continues, second LOAD demotes to INT)
//	0x08: add x3, x1, x2  (TAIL, stops)
var BuiltinTestBuffer = []byte{
	0x03, 0x80, 0x08, 0x80,
	0x03, 0xc0, 0x08, 0x81,
	0x03, 0x44, 0x18, 0x08,
}
