package contigcov

// Compressed copies of the report const.

var reportXZ = []byte{
	0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00, 0x01, 0x69, 0x22, 0xde, 0x36,
	0x02, 0x00, 0x21, 0x01, 0x16, 0x00, 0x00, 0x00, 0x74, 0x2f, 0xe5, 0xa3,
	0x01, 0x00, 0x30, 0x63, 0x68, 0x72, 0x31, 0x2c, 0x31, 0x31, 0x32, 0x39,
	0x32, 0x32, 0x39, 0x37, 0x31, 0x33, 0x34, 0x2c, 0x34, 0x38, 0x2e, 0x39,
	0x39, 0x34, 0x35, 0x0a, 0x63, 0x68, 0x72, 0x58, 0x2c, 0x33, 0x35, 0x39,
	0x30, 0x32, 0x39, 0x35, 0x37, 0x36, 0x39, 0x2c, 0x32, 0x33, 0x2e, 0x31,
	0x37, 0x39, 0x32, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x25, 0xd3, 0x6b, 0x71,
	0x00, 0x01, 0x45, 0x31, 0x51, 0x0e, 0x56, 0xfc, 0x90, 0x42, 0x99, 0x0d,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x59, 0x5a,
}

var reportBZip2 = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xe4, 0x39,
	0x24, 0xaf, 0x00, 0x00, 0x15, 0xdb, 0x80, 0x00, 0x10, 0x00, 0x05, 0x7f,
	0xe0, 0x00, 0x40, 0x08, 0x40, 0x10, 0x00, 0x20, 0x00, 0x21, 0xaa, 0x6c,
	0x14, 0xf4, 0xf5, 0x31, 0x4d, 0x0a, 0x1a, 0x69, 0x80, 0x07, 0x98, 0xab,
	0x26, 0xdb, 0xa7, 0xdc, 0xa7, 0x0c, 0xd7, 0x41, 0x17, 0x6e, 0x85, 0x16,
	0x52, 0xa1, 0xf1, 0x5e, 0x63, 0x40, 0xf3, 0x07, 0xc3, 0xa3, 0xf1, 0x77,
	0x24, 0x53, 0x85, 0x09, 0x0e, 0x43, 0x92, 0x4a, 0xf0,
}
